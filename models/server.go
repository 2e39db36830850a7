package models

// ServerInfo is one entry of the radio-browser /json/servers listing.
type ServerInfo struct {
	Name string `json:"name"`
	IP   string `json:"ip"`
}
