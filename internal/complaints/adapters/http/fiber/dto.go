package fiber

type SubmitComplaintRequest struct {
	GCID         int64  `json:"gc_id"`
	ComplainerID int64  `json:"complainer_id"`
	Text         string `json:"text"`
}

type SubmitComplaintResponse struct {
	Status           string `json:"status"`
	Message          string `json:"message"`
	IsAbusiveFlagged bool   `json:"is_abusive_flagged"`
}

type ErrorResponse struct {
	Status  string `json:"status" example:"error"`
	Message string `json:"message" example:"Missing GC ID or complaint text."`
}
