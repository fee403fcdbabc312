package types

type Comment struct {
	User    string `json:"user"`
	Message string `json:"message"`
	Date    string `json:"date"`
}
