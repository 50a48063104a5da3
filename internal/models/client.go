package models

// ClientType is an enum for the client record type
type ClientType string

const (
	// ClientIndividual represents a natural-person client
	ClientIndividual ClientType = "individual"
	// ClientBusiness represents a company client
	ClientBusiness ClientType = "empresa"
)

// ClientTypeCodes maps client type labels to the backend integer codes
var ClientTypeCodes = map[ClientType]int{
	ClientIndividual: 1,
	ClientBusiness:   2,
}

// ClientTypeFromCode is the reverse of ClientTypeCodes
var ClientTypeFromCode = reverseCodes(ClientTypeCodes)

// Client is the canonical client record shape
type Client struct {
	ID       int64      `json:"id"`
	FullName string     `json:"full_name"`
	Email    string     `json:"email"`
	Phone    string     `json:"phone"`
	Address  string     `json:"address"`
	Type     ClientType `json:"type"`
	Notes    string     `json:"notes,omitempty"`
}
