package domain

// ---------- Contrato de salida (Discord webhook) ----------
// Estas estructuras son el formato de cable del sink: no se rediseñan.

// Colores decimales de los embeds, parte del contrato bit a bit.
const (
	ColorGreen     = 5763719
	ColorGold      = 15844367
	ColorBlue      = 3447003
	ColorDarkGreen = 3066993
	ColorRed       = 15158332
	ColorPink      = 15277667
	ColorGray      = 9807270
)

// Message es el cuerpo JSON que recibe el webhook de Discord.
type Message struct {
	Content string  `json:"content,omitempty"`
	Embeds  []Embed `json:"embeds"`
}

// Embed es la unidad de mensaje estructurada que renderiza el cliente de chat.
type Embed struct {
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Color       int          `json:"color"`
	URL         string       `json:"url,omitempty"`
	Image       *EmbedImage  `json:"image,omitempty"`
	Fields      []EmbedField `json:"fields,omitempty"`
	Timestamp   string       `json:"timestamp"` // ISO-8601
	Footer      EmbedFooter  `json:"footer"`
}

type EmbedImage struct {
	URL string `json:"url"`
}

type EmbedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

type EmbedFooter struct {
	Text string `json:"text"`
}
