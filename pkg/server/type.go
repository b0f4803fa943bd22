package server

// interactionRequest is one websocket interaction message: the display
// unit toggle plus the optional filters. Dates use the 2006-01-02 layout
// and are inclusive on both ends.
type interactionRequest struct {
	Unit       string   `json:"unit"`
	Bucket     string   `json:"bucket"`
	From       string   `json:"from"`
	To         string   `json:"to"`
	Appliances []string `json:"appliances"`
	Weather    string   `json:"weather"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type statusResponse struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}

type appliancesResponse struct {
	Appliances []string `json:"appliances"`
}
