package model

type TransposeRequest struct {
	Note     string `json:"note"`
	Interval string `json:"interval"`
}

type TransposeResponse struct {
	Note      string  `json:"note"`
	Midi      *uint8  `json:"midi,omitempty"`
	Frequency float64 `json:"frequency"`
}

type KeyResponse struct {
	Key         string   `json:"key"`
	Sharps      int      `json:"sharps"`
	Alterations []string `json:"alterations"`
	Degrees     []string `json:"degrees"`
	Relative    string   `json:"relative,omitempty"`
}

type ScaleResponse struct {
	Root    string   `json:"root"`
	Pattern string   `json:"pattern"`
	Degrees []string `json:"degrees"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
