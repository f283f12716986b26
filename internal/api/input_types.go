package api

type loginInput struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

type verifyInput struct {
	Code string `json:"code" form:"code"`
}

type clientInput struct {
	BusinessName string `json:"business_name" form:"business_name"`
	ContactName  string `json:"contact_name" form:"contact_name"`
	Email        string `json:"email" form:"email"`
	Phone        string `json:"phone" form:"phone"`
	Status       string `json:"status" form:"status"`
	Notes        string `json:"notes" form:"notes"`
}

type clientPatchInput struct {
	BusinessName *string `json:"business_name" form:"business_name"`
	ContactName  *string `json:"contact_name" form:"contact_name"`
	Email        *string `json:"email" form:"email"`
	Phone        *string `json:"phone" form:"phone"`
	Status       *string `json:"status" form:"status"`
	Notes        *string `json:"notes" form:"notes"`
}

type urlsInput struct {
	DomainURL  string `json:"domain_url" form:"domain_url"`
	WebsiteURL string `json:"website_url" form:"website_url"`
}

type phaseStatusInput struct {
	Status string `json:"status" form:"status"`
}

type taskInput struct {
	Name string `json:"name" form:"name"`
}

type notifyPhaseInput struct {
	Phase int `json:"phase" form:"phase"`
}
