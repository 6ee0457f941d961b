// Package catalog holds the static INEGI lookup tables: federal entity codes,
// the common-indicator catalog, indicator categories, employee strata and a
// short economic-activity table. All lookups have a textual fallback so an
// unknown code renders as "{Label} {code}" instead of failing.
package catalog

import (
	"fmt"
	"strings"
)

// Entities maps federal entity codes (2 digits, zero-padded) to state names.
var Entities = map[string]string{
	"01": "Aguascalientes",
	"02": "Baja California",
	"03": "Baja California Sur",
	"04": "Campeche",
	"05": "Coahuila",
	"06": "Colima",
	"07": "Chiapas",
	"08": "Chihuahua",
	"09": "Ciudad de México",
	"10": "Durango",
	"11": "Guanajuato",
	"12": "Guerrero",
	"13": "Hidalgo",
	"14": "Jalisco",
	"15": "México",
	"16": "Michoacán",
	"17": "Morelos",
	"18": "Nayarit",
	"19": "Nuevo León",
	"20": "Oaxaca",
	"21": "Puebla",
	"22": "Querétaro",
	"23": "Quintana Roo",
	"24": "San Luis Potosí",
	"25": "Sinaloa",
	"26": "Sonora",
	"27": "Tabasco",
	"28": "Tamaulipas",
	"29": "Tlaxcala",
	"30": "Veracruz",
	"31": "Yucatán",
	"32": "Zacatecas",
}

// Indicator is one entry of the common-indicator catalog.
type Indicator struct {
	ID   string
	Name string
}

// CommonIndicators is the ordered common-indicator catalog.
//
// The source catalog listed 628194 twice ("Inflación mensual" under Precios
// and "Índice de rezago social" under Desarrollo Social); last write wins, so
// only the latter survives here. Flagged for product-owner clarification.
var CommonIndicators = []Indicator{
	// Demográficos
	{"1002000001", "Población total"},
	{"1002000002", "Población femenina"},
	{"1002000003", "Población masculina"},
	{"6200240326", "Densidad de población"},

	// Económicos generales
	{"381016", "Producto Interno Bruto (PIB)"},
	{"381017", "PIB per cápita"},

	// Empleo
	{"444612", "Tasa de desempleo"},
	{"444603", "Tasa de ocupación"},
	{"444604", "Población económicamente activa"},
	{"444605", "Población ocupada"},
	{"444606", "Población desocupada"},

	// Precios e inflación
	{"216906", "Índice Nacional de Precios al Consumidor (INPC)"},
	{"216668", "Inflación anual"},

	// Vivienda
	{"6207019887", "Número de viviendas particulares habitadas"},
	{"6207019888", "Promedio de ocupantes por vivienda"},

	// Educación
	{"1002000022", "Grado promedio de escolaridad"},
	{"1002000023", "Porcentaje de población analfabeta"},

	// Salud
	{"6200028214", "Tasa de mortalidad infantil"},
	{"6200028221", "Esperanza de vida al nacimiento"},

	// Pobreza y desarrollo
	{"628194", "Índice de rezago social"},
	{"628195", "Índice de marginación"},
}

// Categories groups common indicator IDs by topic.
var Categories = map[string][]string{
	"Demografía":       {"1002000001", "1002000002", "1002000003", "6200240326"},
	"Economía":         {"381016", "381017"},
	"Empleo":           {"444612", "444603", "444604", "444605", "444606"},
	"Precios":          {"216906", "216668", "628194"},
	"Vivienda":         {"6207019887", "6207019888"},
	"Educación":        {"1002000022", "1002000023"},
	"Salud":            {"6200028214", "6200028221"},
	"Desarrollo Social": {"628194", "628195"},
}

// StrataLabels maps DENUE size-stratum codes to employee-count bands.
var StrataLabels = map[string]string{
	"1": "0-5 empleados",
	"2": "6-10 empleados",
	"3": "11-30 empleados",
	"4": "31-50 empleados",
	"5": "51-100 empleados",
	"6": "101-250 empleados",
	"7": "251+ empleados",
}

// ActivityNames is a short table of common SCIAN activity prefixes.
var ActivityNames = map[string]string{
	"46":  "Comercio al por menor",
	"462": "Comercio al por menor en tiendas de abarrotes",
	"464": "Comercio al por menor de alimentos",
	"722": "Servicios de preparación de alimentos",
	"111": "Agricultura",
	"112": "Ganadería",
}

var indicatorNames = func() map[string]string {
	m := make(map[string]string, len(CommonIndicators))
	for _, ind := range CommonIndicators {
		m[ind.ID] = ind.Name
	}
	return m
}()

// ZeroPad left-pads code with zeros to width digits.
func ZeroPad(code string, width int) string {
	if len(code) >= width {
		return code
	}
	return strings.Repeat("0", width-len(code)) + code
}

// EntityName resolves a state code (padded to 2 digits) to its display name.
func EntityName(code string) string {
	if name, ok := Entities[ZeroPad(code, 2)]; ok {
		return name
	}
	return fmt.Sprintf("Entidad %s", code)
}

// IndicatorName resolves an indicator ID to its catalog name.
func IndicatorName(id string) string {
	if name, ok := indicatorNames[id]; ok {
		return name
	}
	return fmt.Sprintf("Indicador %s", id)
}

// StratumLabel resolves a stratum code to its employee band; unknown codes
// render as themselves.
func StratumLabel(code string) string {
	if label, ok := StrataLabels[code]; ok {
		return label
	}
	return code
}

// ActivityName resolves a SCIAN activity code prefix to a display name.
func ActivityName(code string) string {
	if name, ok := ActivityNames[code]; ok {
		return name
	}
	return fmt.Sprintf("Actividad %s", code)
}
