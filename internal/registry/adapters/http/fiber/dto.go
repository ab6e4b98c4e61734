package fiber

// LoginRequest carries the dashboard access code.
// @Description Dashboard login DTO
type LoginRequest struct {
	Code string `json:"code"`
}

type LoginResponse struct {
	Status    string `json:"status"`
	GCID      int64  `json:"gc_id"`
	GroupName string `json:"group_name"`
	Tier      string `json:"tier"`
}

type RegisterGroupRequest struct {
	GCID      int64  `json:"gc_id"`
	OwnerID   int64  `json:"owner_id"`
	GroupName string `json:"group_name"`
}

type RegisterGroupResponse struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	LoginCode string `json:"login_code"`
}

type ResolveCodeResponse struct {
	Status string `json:"status"`
	ChatID int64  `json:"chat_id"`
}

type ErrorResponse struct {
	Status  string `json:"status" example:"error"`
	Message string `json:"message" example:"Invalid login code."`
}
