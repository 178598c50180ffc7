package analysis

type FiltroRequest struct {
	Locais     []string `json:"locais" query:"locais"`
	Apreensoes []string `json:"apreensoes" query:"apreensoes"`
	Placa      string   `json:"placa" query:"placa"`
	DataInicio string   `json:"data_inicio" query:"data_inicio"`
	DataFim    string   `json:"data_fim" query:"data_fim"`
}

type ContagemItem struct {
	Nome  string `json:"nome"`
	Total int64  `json:"total"`
}

type RotaItem struct {
	Partida string `json:"partida"`
	Chegada string `json:"chegada"`
	Total   int64  `json:"total"`
}

type SankeyLink struct {
	Source string `json:"source"`
	Target string `json:"target"`
	Value  int64  `json:"value"`
}

type AnaliseResponse struct {
	TotalPassagens         int64          `json:"total_passagens"`
	TopMunicipios          []ContagemItem `json:"top_municipios"`
	TopRodovias            []ContagemItem `json:"top_rodovias"`
	PorHora                []int64        `json:"por_hora"`
	PorDiaSemana           []int64        `json:"por_dia_semana"`
	Heatmap                [][]int64      `json:"heatmap"`
	TempoMedioEntregaHoras string         `json:"tempo_medio_entrega_horas"`
	Rotas                  []RotaItem     `json:"rotas"`
	Sankey                 []SankeyLink   `json:"sankey"`
	IntelModelos           []ContagemItem `json:"inteligencia_modelos"`
	IntelCores             []ContagemItem `json:"inteligencia_cores"`
	IntelApreensoes        []ContagemItem `json:"inteligencia_apreensoes"`
}

type FiltrosResponse struct {
	Locais         []string `json:"locais"`
	TiposApreensao []string `json:"tipos_apreensao"`
}
