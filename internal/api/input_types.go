package api

// Create payloads carry required fields as plain values; update payloads
// use pointers so that only fields present in the request body are
// applied, matching the partial-update contract.

type locationCreatePayload struct {
	Description string `json:"description"`
}

type locationUpdatePayload struct {
	Description *string `json:"description"`
}

type categoryCreatePayload struct {
	Name string `json:"name"`
}

type categoryUpdatePayload struct {
	Name *string `json:"name"`
}

type taskCreatePayload struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	LocationID  *uint  `json:"location_id"`
}

type taskUpdatePayload struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	LocationID  *uint   `json:"location_id"`
}

type userCreatePayload struct {
	Name     string `json:"name"`
	Login    string `json:"login"`
	Password string `json:"password"`
}

type externalUserCreatePayload struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type userUpdatePayload struct {
	Name     *string `json:"name"`
	Login    *string `json:"login"`
	Password *string `json:"password"`
	Email    *string `json:"email"`
}

type loginPayload struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

type externalLoginPayload struct {
	Email string `json:"email"`
}

type taskAssignmentCreatePayload struct {
	UserID uint    `json:"user_id"`
	TaskID uint    `json:"task_id"`
	Date   *string `json:"date"`
	Period string  `json:"period"`
}

type taskAssignmentUpdatePayload struct {
	UserID *uint   `json:"user_id"`
	TaskID *uint   `json:"task_id"`
	Date   *string `json:"date"`
	Period *string `json:"period"`
	Done   *int    `json:"done"`
}

type emailAssignmentCreatePayload struct {
	TaskID uint    `json:"task_id"`
	Email  string  `json:"email"`
	Date   *string `json:"date"`
	Period string  `json:"period"`
}

type emailAssignmentUpdatePayload struct {
	TaskID *uint   `json:"task_id"`
	Email  *string `json:"email"`
	Date   *string `json:"date"`
	Period *string `json:"period"`
	Done   *int    `json:"done"`
}
