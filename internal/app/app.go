package app

import (
	"net/http"

	"github.com/datamx/inegi-mcp-server/internal/config"
	"github.com/datamx/inegi-mcp-server/internal/inegi"
	"github.com/datamx/inegi-mcp-server/internal/mcp"
	"github.com/datamx/inegi-mcp-server/internal/tools"
)

// NewToolbox builds the INEGI toolbox from loaded configuration.
func NewToolbox(cfg config.Config) (*mcp.Toolbox, error) {
	httpClient := &http.Client{Timeout: cfg.HTTPTimeout}
	indicators := inegi.NewIndicatorsClient(cfg, httpClient)
	denue := inegi.NewDENUEClient(cfg, httpClient)

	return mcp.NewToolbox(
		// Indicator tools
		tools.BuscarIndicadores(),
		tools.ObtenerSerieTemporal(indicators),
		tools.ListarIndicadores(),
		tools.CompararEstados(indicators),
		tools.ObtenerMetadatos(indicators),
		tools.ObtenerCatalogo(indicators),

		// DENUE tools
		tools.BuscarEstablecimientos(denue),
		tools.ObtenerCoordenadas(denue),
		tools.BuscarAreaAct(denue),
		tools.Cuantificar(denue),
		tools.ObtenerEstablecimiento(denue),
		tools.EstadisticasEstablecimientos(denue),
		tools.BuscarCatalogoCompleto(denue),
	)
}

// NewMCPServer constructs an MCP server with the INEGI toolbox.
func NewMCPServer(cfg config.Config) (*mcp.Server, error) {
	tb, err := NewToolbox(cfg)
	if err != nil {
		return nil, err
	}
	return mcp.NewServer(tb), nil
}
