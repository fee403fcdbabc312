package types

type NewCommentReq struct {
	Title   string  `json:"title"`
	Comment Comment `json:"comment"`
}

type LoginReq struct {
	Name string `json:"name"`
	Word string `json:"word"`
}

type ErrorResp struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
	Rule  string `json:"rule,omitempty"`
}

type StatsResp struct {
	Title string `json:"title"`
	Views int64  `json:"views"`
}
