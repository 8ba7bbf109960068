package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// PrettyJSON serializa v con indentación de 4 espacios y sin escapar HTML
// (las URLs del payload deben quedar legibles en el volcado). Se usa para el
// bloque de código del formateo genérico de eventos.
func PrettyJSON(v interface{}) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(v); err != nil {
		return fmt.Sprintf("%v", v)
	}
	return strings.TrimRight(buf.String(), "\n")
}
