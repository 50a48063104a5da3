package models

// Report describes one entry of the fixed report list. There is no dynamic
// discovery: the file names are known up front and served by the document
// server.
type Report struct {
	Name        string `json:"name"`
	Title       string `json:"title"`
	ViewURL     string `json:"view_url"`
	DownloadURL string `json:"download_url"`
}

// reportFiles is the fixed list of report documents
var reportFiles = []struct {
	file  string
	title string
}{
	{"inventario_vehiculos.pdf", "Inventario de vehiculos"},
	{"ventas_mensuales.pdf", "Ventas mensuales"},
	{"mantenimientos_pendientes.pdf", "Mantenimientos pendientes"},
	{"conductores_activos.pdf", "Conductores activos"},
	{"entregas_finalizadas.pdf", "Entregas finalizadas"},
}

// Reports builds the report list against the document server base URL
func Reports(docsBaseURL string) []Report {
	out := make([]Report, 0, len(reportFiles))
	for _, r := range reportFiles {
		out = append(out, Report{
			Name:        r.file,
			Title:       r.title,
			ViewURL:     docsBaseURL + "/reports/" + r.file,
			DownloadURL: docsBaseURL + "/reports/" + r.file + "?download=true",
		})
	}
	return out
}
