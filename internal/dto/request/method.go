package request

type MethodRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}
