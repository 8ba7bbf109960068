package domain

import (
	"fmt"
	"net/url"
)

// ---------- Resolución de campos con prioridad ----------
// El payload de Fourthwall no garantiza en qué campo llega cada URL, así que
// la cadena de candidatos se mantiene como datos (no como condicionales
// inline) y se evalúa en orden hasta el primer valor válido.

// URLCandidate es un par (fuente, valor) dentro de una cadena de prioridad.
type URLCandidate struct {
	Source string
	Value  string
}

// ResolveURL recorre los candidatos en orden y devuelve el primero cuyo valor
// es una URL absoluta bien formada (esquema + host). Función pura, sin red.
func ResolveURL(candidates []URLCandidate) (string, bool) {
	for _, c := range candidates {
		if c.Value != "" && isValidURL(c.Value) {
			return c.Value, true
		}
	}
	return "", false
}

func isValidURL(raw string) bool {
	u, err := url.Parse(raw)
	return err == nil && u.Scheme != "" && u.Host != ""
}

// ProductURLCandidates construye, en orden de prioridad, las fuentes posibles
// de la URL pública de un producto.
func ProductURLCandidates(product map[string]interface{}) []URLCandidate {
	return []URLCandidate{
		{Source: "product_url", Value: stringField(product, "product_url")},
		{Source: "url", Value: stringField(product, "url")},
		{Source: "permalink", Value: stringField(product, "permalink")},
		{Source: "link", Value: stringField(product, "link")},
		{Source: "shop_url", Value: stringField(product, "shop_url")},
		{Source: "public_url", Value: stringField(product, "public_url")},
		{Source: "web_url", Value: stringField(product, "web_url")},
	}
}

// ProductImageCandidates construye, en orden de prioridad, las fuentes
// posibles de la imagen de un producto, incluyendo rutas anidadas y el primer
// elemento de los arrays `images` y `photos`.
func ProductImageCandidates(product map[string]interface{}) []URLCandidate {
	return []URLCandidate{
		{Source: "image.url", Value: nestedStringField(product, "image", "url")},
		{Source: "image_url", Value: stringField(product, "image_url")},
		{Source: "thumbnail", Value: stringField(product, "thumbnail")},
		{Source: "featured_image", Value: stringField(product, "featured_image")},
		{Source: "images.0.url", Value: indexedStringField(product, "images", 0, "url")},
		{Source: "image.large", Value: nestedStringField(product, "image", "large")},
		{Source: "image.medium", Value: nestedStringField(product, "image", "medium")},
		{Source: "image.small", Value: nestedStringField(product, "image", "small")},
		{Source: "photos.0.url", Value: indexedStringField(product, "photos", 0, "url")},
		{Source: "cover_image", Value: stringField(product, "cover_image")},
	}
}

// BuildShopURL construye de forma determinista la URL pública de un producto
// a partir del dominio de la tienda y el slug.
func BuildShopURL(shopDomain, productSlug string) string {
	return fmt.Sprintf("https://%s/products/%s", shopDomain, productSlug)
}

// ---------- Helpers de acceso al payload dinámico ----------

// stringField devuelve m[key] si es un string, o "" si falta o es otro tipo.
func stringField(m map[string]interface{}, key string) string {
	if m == nil {
		return ""
	}
	if s, ok := m[key].(string); ok {
		return s
	}
	return ""
}

// nestedStringField devuelve m[key][sub] si el camino existe y es un string.
func nestedStringField(m map[string]interface{}, key, sub string) string {
	if m == nil {
		return ""
	}
	nested, ok := m[key].(map[string]interface{})
	if !ok {
		return ""
	}
	return stringField(nested, sub)
}

// indexedStringField devuelve m[key][idx][sub] cuando m[key] es un array de
// objetos con longitud suficiente.
func indexedStringField(m map[string]interface{}, key string, idx int, sub string) string {
	if m == nil {
		return ""
	}
	arr, ok := m[key].([]interface{})
	if !ok || idx < 0 || idx >= len(arr) {
		return ""
	}
	item, ok := arr[idx].(map[string]interface{})
	if !ok {
		return ""
	}
	return stringField(item, sub)
}
