package format

import "strings"

// DefaultColor используется для неизвестных статусов.
const DefaultColor = "#6b7280"

var statusLabels = map[string]string{
	"novo":        "Novo",
	"contato":     "Contato Inicial",
	"qualificado": "Qualificado",
	"proposta":    "Proposta Enviada",
	"negociacao":  "Em Negociação",
	"ganho":       "Ganho",
	"perdido":     "Perdido",
}

var statusColors = map[string]string{
	"novo":        "#3b82f6",
	"contato":     "#8b5cf6",
	"qualificado": "#f59e0b",
	"proposta":    "#10b981",
	"negociacao":  "#14b8a6",
	"ganho":       "#22c55e",
	"perdido":     "#ef4444",
}

var sourceLabels = map[string]string{
	"website":      "Website",
	"indicacao":    "Indicação",
	"telefone":     "Telefone",
	"email":        "E-mail",
	"evento":       "Evento",
	"midia-social": "Mídia Social",
	"outro":        "Outro",
}

var interactionLabels = map[string]string{
	"email":    "E-mail",
	"telefone": "Telefone",
	"reuniao":  "Reunião",
	"nota":     "Nota",
	"whatsapp": "WhatsApp",
	"outro":    "Outro",
	"status":   "Mudança de Status",
}

// StatusLabel возвращает название статуса или само значение, если статус неизвестен.
func StatusLabel(status string) string {
	return lookup(statusLabels, status)
}

// StatusColor возвращает цвет колонки статуса.
func StatusColor(status string) string {
	if color, ok := statusColors[status]; ok {
		return color
	}
	return DefaultColor
}

// SourceLabel возвращает название источника или само значение.
func SourceLabel(source string) string {
	return lookup(sourceLabels, source)
}

// InteractionLabel возвращает название типа взаимодействия или само значение.
func InteractionLabel(interactionType string) string {
	return lookup(interactionLabels, interactionType)
}

// ParseStatus принимает ключ или название статуса и возвращает ключ.
func ParseStatus(value string) (string, bool) {
	return reverse(statusLabels, value)
}

// ParseSource принимает ключ или название источника и возвращает ключ.
func ParseSource(value string) (string, bool) {
	return reverse(sourceLabels, value)
}

func lookup(labels map[string]string, key string) string {
	if label, ok := labels[key]; ok {
		return label
	}
	return key
}

func reverse(labels map[string]string, value string) (string, bool) {
	v := strings.TrimSpace(value)
	for key, label := range labels {
		if strings.EqualFold(v, key) || strings.EqualFold(v, label) {
			return key, true
		}
	}
	return "", false
}
