package ui

import (
	"fmt"
	"math"
	"strconv"

	"github.com/piwi3910/DecoraPuertas/internal/model"
	"github.com/piwi3910/DecoraPuertas/internal/money"
)

// Fixed storefront copy.
const (
	uploadHint      = "Usando tu diseño cargado."
	dragTip         = "Tip: también puedes arrastrar el diseño directamente sobre la puerta en el preview."
	aspectNote      = "La proporción del preview se ajusta automáticamente a las dimensiones que ingreses."
	readyToOrder    = "¿Listo para ordenar?"
	quantityNoteFmt = "Incluye %d unidad(es). Impuestos/aplicaciones adicionales se calculan al finalizar la compra."
	rateNoteFmt     = "* El precio se calcula a %s por pie cuadrado. El acabado no incluye instalación."
)

// Specifications lists the product features shown beside the preview.
var Specifications = []string{
	"Vinil adhesivo premium, acabado mate o brillante.",
	"Fácil instalación, sin herramientas especiales.",
	"Corte a la medida de tu puerta.",
	"Resistente a humedad interior. Uso exterior opcional.",
}

// FAQEntry is one question of the help panel.
type FAQEntry struct {
	Question string
	Answer   string
}

// FAQ holds the frequently asked questions.
var FAQ = []FAQEntry{
	{
		Question: "¿Cómo tomo las medidas de mi puerta?",
		Answer:   "Mide el ancho y alto del panel que cubrirá el vinil. Puedes usar pulgadas (in), centímetros (cm) o pies (ft). Nosotros convertimos automáticamente.",
	},
	{
		Question: "¿El precio incluye instalación?",
		Answer:   "No. El precio mostrado corresponde al material impreso. Ofrecemos instalación con costo adicional según ubicación.",
	},
	{
		Question: "¿Puedo enviar mi propio diseño?",
		Answer:   "¡Sí! Sube tu archivo en PNG o JPG con buena resolución. Recomendamos mínimo 150 DPI a tamaño real.",
	},
	{
		Question: "¿En cuánto tiempo lo recibo?",
		Answer:   "La producción suele tardar 2–4 días hábiles. Envío/retirada según tu preferencia.",
	},
}

// Summary is the text of the summary panel for one session state.
type Summary struct {
	Width        string
	Height       string
	Area         string
	Price        string // Price of one door
	Total        string
	QuantityNote string
	RateNote     string
}

// BuildSummary formats the derived values of s.
func BuildSummary(s *model.Session, f money.Formatter) Summary {
	q := s.Quote()
	return Summary{
		Width:        formatRaw(s.Width) + " " + s.Unit.String(),
		Height:       formatRaw(s.Height) + " " + s.Unit.String(),
		Area:         fmt.Sprintf("%.2f ft²", q.AreaSqFt),
		Price:        f.Format(q.RoundedUnitPrice()),
		Total:        "Total: " + f.Format(q.Total),
		QuantityNote: fmt.Sprintf(quantityNoteFmt, q.Quantity),
		RateNote:     fmt.Sprintf(rateNoteFmt, f.Format(int64(math.Round(q.RatePerSqFt)))),
	}
}

// formatRaw echoes a typed number without trailing zeros.
func formatRaw(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// sliderLabel renders a placement slider caption such as "Escala (120%)".
func sliderLabel(name string, pct float64) string {
	return fmt.Sprintf("%s (%.0f%%)", name, pct)
}

// ResolutionWarning returns a notice when artwork pixelWidth pixels wide would
// print below the recommended DPI on the session's door, or "" otherwise.
func ResolutionWarning(s *model.Session, pixelWidth int) string {
	dpi := model.EffectiveDPI(pixelWidth, s.Dimensions().WidthFt, s.Placement.ScalePct)
	if dpi <= 0 || dpi >= model.RecommendedDPI {
		return ""
	}
	return fmt.Sprintf("Resolución baja: tu diseño quedaría a unos %.0f DPI. Recomendamos mínimo %.0f DPI a tamaño real.",
		dpi, model.RecommendedDPI)
}
