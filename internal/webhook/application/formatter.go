package application

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/davicafu/fourthwall-relay/internal/webhook/domain"
	"github.com/davicafu/fourthwall-relay/pkg/utils"
)

// MessageFormatter transforma un evento de Fourthwall en un mensaje de Discord.
// Cada rama es pura salvo la de PRODUCT_CREATED, que puede consultar el
// catálogo como respaldo para la URL del producto (la única rama con red).
type MessageFormatter struct {
	catalog    domain.ProductCatalog
	roleID     string
	shopDomain string
	log        *zap.Logger
	now        func() time.Time
}

// NewMessageFormatter crea el formatter con su configuración inmutable.
func NewMessageFormatter(catalog domain.ProductCatalog, roleID, shopDomain string, log *zap.Logger) *MessageFormatter {
	return &MessageFormatter{
		catalog:    catalog,
		roleID:     roleID,
		shopDomain: shopDomain,
		log:        log,
		now:        time.Now,
	}
}

// WithClock fija el reloj usado para los timestamps de los embeds (tests).
func (f *MessageFormatter) WithClock(now func() time.Time) *MessageFormatter {
	f.now = now
	return f
}

// Format enruta el evento por su tipo declarado a una regla de formateo
// dedicada. Los tipos no reconocidos caen en el volcado genérico.
//
// Las ramas de pedidos/suscripciones/donaciones existen como capacidad del
// formatter pero hoy no son alcanzables desde el endpoint expuesto, que solo
// admite PRODUCT_CREATED y PROMOTION_CREATED.
func (f *MessageFormatter) Format(ctx context.Context, eventType string, event domain.InboundEvent) domain.Message {
	switch eventType {
	case domain.EventProductCreated:
		return f.formatProductCreated(ctx, event.Payload())
	case domain.EventPromotionCreated:
		return f.formatPromotionCreated(event.Payload())
	case domain.EventOrderCreated:
		return f.formatOrderCreated(event.Payload())
	case domain.EventOrderUpdated:
		return f.formatOrderUpdated(event.Payload())
	case domain.EventOrderFulfilled:
		return f.formatOrderFulfilled(event.Payload())
	case domain.EventSubscriptionCreated:
		return f.formatSubscriptionCreated(event.Payload())
	case domain.EventSubscriptionUpdated:
		return f.formatSubscriptionUpdated(event.Payload())
	case domain.EventSubscriptionCancelled:
		return f.formatSubscriptionCancelled(event.Payload())
	case domain.EventDonationCreated:
		return f.formatDonationCreated(event.Payload())
	default:
		return f.formatGenericEvent(eventType, event.Raw)
	}
}

// ---------------- Ramas por tipo de evento ----------------

func (f *MessageFormatter) formatProductCreated(ctx context.Context, product map[string]interface{}) domain.Message {
	name := fieldOrDefault(product, "name", "Unknown Product")
	currency := fieldOrDefault(product, "currency", "USD")

	productURL := f.resolveProductURL(ctx, product)
	imageURL, _ := domain.ResolveURL(domain.ProductImageCandidates(product))

	description := "**New Product Added!**\n"
	if price, ok := product["price"]; ok && price != nil {
		description += fmt.Sprintf("**Price:** %s %s", currency, formatValue(price))
	}

	embed := domain.Embed{
		Title:       fmt.Sprintf("🛍️ %s", name),
		Description: description,
		Color:       domain.ColorGreen,
		Timestamp:   f.timestamp(),
		Footer:      domain.EmbedFooter{Text: "Fourthwall Product"},
	}
	if productURL != "" {
		embed.URL = productURL
	}
	if imageURL != "" {
		embed.Image = &domain.EmbedImage{URL: imageURL}
	}

	return domain.Message{
		Content: f.mentionContent(),
		Embeds:  []domain.Embed{embed},
	}
}

func (f *MessageFormatter) formatPromotionCreated(promotion map[string]interface{}) domain.Message {
	promoCode := fieldOrDefault(promotion, "code", "Unknown Code")
	discount := mapField(promotion, "discount")
	requirements := mapField(promotion, "requirements")
	limits := mapField(promotion, "limits")

	description := "**New Promotion Available!**\n"
	description += fmt.Sprintf("**Code:** `%s`\n", promoCode)

	switch stringValue(discount["type"]) {
	case "PERCENTAGE":
		percentage := fieldOrDefault(discount, "percentage", "0")
		description += fmt.Sprintf("**Discount:** %s%% off\n", percentage)
	case "FIXED_AMOUNT":
		amount := fieldOrDefault(discount, "amount", "0")
		currency := fieldOrDefault(discount, "currency", "USD")
		description += fmt.Sprintf("**Discount:** %s %s off\n", currency, amount)
	}

	if minOrder, ok := requirements["minimumOrderValue"].(map[string]interface{}); ok {
		minValue := fieldOrDefault(minOrder, "value", "0")
		currency := fieldOrDefault(minOrder, "currency", "USD")
		description += fmt.Sprintf("**Minimum Order:** %s %s", currency, minValue)
	}

	var fields []domain.EmbedField
	if maxUses, ok := limits["maximumUsesNumber"]; ok && maxUses != nil {
		currentUses := fieldOrDefault(promotion, "usageCount", "0")
		fields = append(fields, domain.EmbedField{
			Name:   "Usage Limit",
			Value:  fmt.Sprintf("%s/%s uses", currentUses, formatValue(maxUses)),
			Inline: true,
		})
	}
	if oneUse, ok := limits["oneUsePerCustomer"].(bool); ok && oneUse {
		fields = append(fields, domain.EmbedField{
			Name:   "Restriction",
			Value:  "One use per customer",
			Inline: true,
		})
	}

	embed := domain.Embed{
		Title:       "🎉 New Promotion!",
		Description: description,
		Color:       domain.ColorGold,
		Fields:      fields,
		Timestamp:   f.timestamp(),
		Footer:      domain.EmbedFooter{Text: "Fourthwall Promotion"},
	}

	return domain.Message{
		Content: f.mentionContent(),
		Embeds:  []domain.Embed{embed},
	}
}

func (f *MessageFormatter) formatOrderCreated(order map[string]interface{}) domain.Message {
	orderID := fieldOrDefault(order, "id", "N/A")
	customerName := nestedFieldOrDefault(order, "customer", "name", "Anonymous")
	total := fieldOrDefault(order, "total", "0")
	currency := fieldOrDefault(order, "currency", "USD")

	itemsList := formatItems(order["items"])

	return domain.Message{
		Embeds: []domain.Embed{{
			Title:       "🛒 New Order Received!",
			Description: fmt.Sprintf("**Customer:** %s\n**Order ID:** %s\n**Total:** %s %s", customerName, orderID, currency, total),
			Color:       domain.ColorGreen,
			Fields: []domain.EmbedField{{
				Name:   "Items",
				Value:  itemsList,
				Inline: false,
			}},
			Timestamp: f.timestamp(),
			Footer:    domain.EmbedFooter{Text: "Fourthwall Order"},
		}},
	}
}

func (f *MessageFormatter) formatOrderUpdated(order map[string]interface{}) domain.Message {
	orderID := fieldOrDefault(order, "id", "N/A")
	status := fieldOrDefault(order, "status", "unknown")

	return domain.Message{
		Embeds: []domain.Embed{{
			Title:       "📦 Order Updated",
			Description: fmt.Sprintf("**Order ID:** %s\n**Status:** %s", orderID, status),
			Color:       domain.ColorBlue,
			Timestamp:   f.timestamp(),
			Footer:      domain.EmbedFooter{Text: "Fourthwall Order"},
		}},
	}
}

func (f *MessageFormatter) formatOrderFulfilled(order map[string]interface{}) domain.Message {
	orderID := fieldOrDefault(order, "id", "N/A")
	customerName := nestedFieldOrDefault(order, "customer", "name", "Anonymous")
	trackingNumber := fieldOrDefault(order, "tracking_number", "N/A")

	return domain.Message{
		Embeds: []domain.Embed{{
			Title:       "✅ Order Fulfilled",
			Description: fmt.Sprintf("**Customer:** %s\n**Order ID:** %s\n**Tracking:** %s", customerName, orderID, trackingNumber),
			Color:       domain.ColorDarkGreen,
			Timestamp:   f.timestamp(),
			Footer:      domain.EmbedFooter{Text: "Fourthwall Order"},
		}},
	}
}

func (f *MessageFormatter) formatSubscriptionCreated(subscription map[string]interface{}) domain.Message {
	subscriberName := nestedFieldOrDefault(subscription, "customer", "name", "Anonymous")
	tier := fieldOrDefault(subscription, "tier", "Unknown")
	amount := fieldOrDefault(subscription, "amount", "0")
	currency := fieldOrDefault(subscription, "currency", "USD")

	return domain.Message{
		Embeds: []domain.Embed{{
			Title:       "⭐ New Subscription!",
			Description: fmt.Sprintf("**Subscriber:** %s\n**Tier:** %s\n**Amount:** %s %s", subscriberName, tier, currency, amount),
			Color:       domain.ColorGold,
			Timestamp:   f.timestamp(),
			Footer:      domain.EmbedFooter{Text: "Fourthwall Subscription"},
		}},
	}
}

func (f *MessageFormatter) formatSubscriptionUpdated(subscription map[string]interface{}) domain.Message {
	subscriberName := nestedFieldOrDefault(subscription, "customer", "name", "Anonymous")
	tier := fieldOrDefault(subscription, "tier", "Unknown")

	return domain.Message{
		Embeds: []domain.Embed{{
			Title:       "🔄 Subscription Updated",
			Description: fmt.Sprintf("**Subscriber:** %s\n**New Tier:** %s", subscriberName, tier),
			Color:       domain.ColorBlue,
			Timestamp:   f.timestamp(),
			Footer:      domain.EmbedFooter{Text: "Fourthwall Subscription"},
		}},
	}
}

func (f *MessageFormatter) formatSubscriptionCancelled(subscription map[string]interface{}) domain.Message {
	subscriberName := nestedFieldOrDefault(subscription, "customer", "name", "Anonymous")

	return domain.Message{
		Embeds: []domain.Embed{{
			Title:       "❌ Subscription Cancelled",
			Description: fmt.Sprintf("**Subscriber:** %s", subscriberName),
			Color:       domain.ColorRed,
			Timestamp:   f.timestamp(),
			Footer:      domain.EmbedFooter{Text: "Fourthwall Subscription"},
		}},
	}
}

func (f *MessageFormatter) formatDonationCreated(donation map[string]interface{}) domain.Message {
	donorName := nestedFieldOrDefault(donation, "donor", "name", "Anonymous")
	amount := fieldOrDefault(donation, "amount", "0")
	currency := fieldOrDefault(donation, "currency", "USD")
	message := stringValue(donation["message"])

	var fields []domain.EmbedField
	if message != "" {
		fields = append(fields, domain.EmbedField{
			Name:   "Message",
			Value:  message,
			Inline: false,
		})
	}

	return domain.Message{
		Embeds: []domain.Embed{{
			Title:       "💝 New Donation!",
			Description: fmt.Sprintf("**Donor:** %s\n**Amount:** %s %s", donorName, currency, amount),
			Color:       domain.ColorPink,
			Fields:      fields,
			Timestamp:   f.timestamp(),
			Footer:      domain.EmbedFooter{Text: "Fourthwall Donation"},
		}},
	}
}

// formatGenericEvent vuelca el payload completo como bloque JSON para tipos
// desconocidos; se mantiene por si el productor añade tipos nuevos.
func (f *MessageFormatter) formatGenericEvent(eventType string, raw map[string]interface{}) domain.Message {
	return domain.Message{
		Embeds: []domain.Embed{{
			Title:       "📢 Fourthwall Event",
			Description: fmt.Sprintf("**Event Type:** %s", eventType),
			Color:       domain.ColorGray,
			Fields: []domain.EmbedField{{
				Name:   "Event Data",
				Value:  "```json\n" + utils.PrettyJSON(raw) + "\n```",
				Inline: false,
			}},
			Timestamp: f.timestamp(),
			Footer:    domain.EmbedFooter{Text: "Fourthwall Event"},
		}},
	}
}

// ---------------- Resolución de la URL del producto ----------------

// resolveProductURL aplica la cadena de respaldo completa: candidatos del
// payload → catálogo → URL construida con el dominio de la tienda → ausencia.
func (f *MessageFormatter) resolveProductURL(ctx context.Context, product map[string]interface{}) string {
	if resolved, ok := domain.ResolveURL(domain.ProductURLCandidates(product)); ok {
		return resolved
	}

	productID := ""
	if v, ok := product["id"]; ok && v != nil {
		productID = formatValue(v)
	}
	if productID == "" {
		return ""
	}

	if f.catalog != nil {
		apiProduct, err := f.catalog.GetProduct(ctx, productID)
		if err != nil {
			// El catálogo es solo un respaldo: cualquier fallo degrada a ausencia.
			f.log.Warn("Fallo consultando el catálogo de productos",
				zap.String("product_id", productID), zap.Error(err))
		}
		if u, ok := apiProduct["url"].(string); ok && u != "" {
			return u
		}
	}

	if f.shopDomain != "" {
		slug := firstNonEmpty(
			stringValue(product["slug"]),
			stringValue(product["handle"]),
			productID,
		)
		return domain.BuildShopURL(f.shopDomain, slug)
	}

	return ""
}

func (f *MessageFormatter) mentionContent() string {
	return fmt.Sprintf("<@&%s> New merch just dropped!", f.roleID)
}

func (f *MessageFormatter) timestamp() string {
	return f.now().Format(time.RFC3339)
}

// ---------------- Helpers de interpolación ----------------

// formatValue interpola un valor JSON tal cual, sin formateo de locale ni
// redondeo: 12 se mantiene como "12" y 12.5 como "12.5".
func formatValue(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", val)
	}
}

// fieldOrDefault devuelve m[key] interpolado, o def si falta o es null.
func fieldOrDefault(m map[string]interface{}, key, def string) string {
	if v, ok := m[key]; ok && v != nil {
		return formatValue(v)
	}
	return def
}

// nestedFieldOrDefault devuelve m[key][sub] interpolado, o def si el camino no existe.
func nestedFieldOrDefault(m map[string]interface{}, key, sub, def string) string {
	if nested, ok := m[key].(map[string]interface{}); ok {
		if v, ok := nested[sub]; ok && v != nil {
			return formatValue(v)
		}
	}
	return def
}

// mapField devuelve m[key] como objeto, o un mapa vacío si falta.
func mapField(m map[string]interface{}, key string) map[string]interface{} {
	if nested, ok := m[key].(map[string]interface{}); ok {
		return nested
	}
	return map[string]interface{}{}
}

func stringValue(v interface{}) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// formatItems construye la lista de líneas de un pedido.
func formatItems(items interface{}) string {
	arr, ok := items.([]interface{})
	if !ok || len(arr) == 0 {
		return "No items"
	}

	formatted := ""
	for i, raw := range arr {
		item, _ := raw.(map[string]interface{})
		name := fieldOrDefault(item, "name", "Unknown item")
		quantity := fieldOrDefault(item, "quantity", "1")
		price := fieldOrDefault(item, "price", "0")
		if i > 0 {
			formatted += "\n"
		}
		formatted += fmt.Sprintf("• %s (x%s) - $%s", name, quantity, price)
	}
	return formatted
}
