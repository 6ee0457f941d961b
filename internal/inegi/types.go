package inegi

// SeriesResponse is the raw shape of an indicators API reply.
type SeriesResponse struct {
	Header map[string]any `json:"Header,omitempty"`
	Series []Series       `json:"Series"`
}

// Series is one indicator series with its metadata and observations.
type Series struct {
	Indicator    string        `json:"INDICADOR"`
	Freq         string        `json:"FREQ"`
	Topic        string        `json:"TOPIC"`
	Unit         string        `json:"UNIT"`
	UnitMult     string        `json:"UNIT_MULT"`
	Note         string        `json:"NOTE"`
	Source       string        `json:"SOURCE"`
	LastUpdate   string        `json:"LASTUPDATE"`
	Status       string        `json:"STATUS"`
	Observations []Observation `json:"OBSERVATIONS"`
}

// Observation is a single time-period value.
type Observation struct {
	TimePeriod string `json:"TIME_PERIOD"`
	Value      string `json:"OBS_VALUE"`
}

// StateResult is the per-state outcome of a comparison. Exactly one of Data
// or Err is set; a failed state never aborts its siblings.
type StateResult struct {
	Code string
	Data *SeriesResponse
	Err  error
}

// Establishment is a DENUE business-directory record. The basic search modes
// and BuscarAreaAct return overlapping key sets; this struct covers the
// fields the tool layer renders. All values arrive as strings.
type Establishment struct {
	ID            string `json:"Id"`
	CLEE          string `json:"CLEE"`
	Name          string `json:"Nombre"`
	LegalName     string `json:"Razon_social"`
	ActivityClass string `json:"Clase_actividad"`
	ActivityName  string `json:"Nombre_act"`
	Street        string `json:"Calle"`
	ExteriorNum   string `json:"Num_Exterior"`
	InteriorNum   string `json:"Num_Interior"`
	Colonia       string `json:"Colonia"`
	PostalCode    string `json:"CP"`
	Location      string `json:"Ubicacion"`
	Municipality  string `json:"Municipio"`
	Entity        string `json:"Entidad"`
	Phone         string `json:"Telefono"`
	Email         string `json:"Correo_e"`
	Website       string `json:"Sitio_internet"`
	Latitude      string `json:"Latitud"`
	Longitude     string `json:"Longitud"`

	// Extended fields returned only by BuscarAreaAct.
	AGEB        string `json:"AGEB"`
	Block       string `json:"Manzana"`
	Building    string `json:"Edificio"`
	SectorID    string `json:"SECTOR_ACTIVIDAD_ID"`
	SubsectorID string `json:"SUBSECTOR_ACTIVIDAD_ID"`
	BranchID    string `json:"RAMA_ACTIVIDAD_ID"`
}

// DisplayName prefers the establishment name, then the legal name.
func (e Establishment) DisplayName() string {
	if e.Name != "" {
		return e.Name
	}
	if e.LegalName != "" {
		return e.LegalName
	}
	return "Sin nombre"
}

// CountItem is one row of a Cuantificar reply: an activity key, a geographic
// key and a count (as a string, per the upstream contract).
type CountItem struct {
	Activity string `json:"AE"`
	Geo      string `json:"AG"`
	Total    string `json:"Total"`
}

// Stats aggregates a search result set: total count, per-activity
// distribution and a small sample of records.
type Stats struct {
	Total      int
	Activities map[string]int
	Sample     []Establishment
}
