package domain

const (
	AnonymousFeedbackName  = "Anônimo"
	AnonymousFeedbackEmail = "feedback@claraboia.com"
	FeedbackCommentMaxLen  = 140
)

type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"senha" validate:"required"`
}

type Registration struct {
	Name                 string `json:"nome" validate:"required"`
	Email                string `json:"email" validate:"required,email"`
	Password             string `json:"senha" validate:"required,min=8"`
	PasswordConfirmation string `json:"confirmar_senha" validate:"required,eqfield=Password"`
}

// AuthResult is the site's answer to a login or registration attempt.
type AuthResult struct {
	Success     bool                `json:"success"`
	Message     string              `json:"message"`
	RedirectURL string              `json:"redirect_url,omitempty"`
	Errors      map[string][]string `json:"errors,omitempty"`
}

type Feedback struct {
	Rating    int    `validate:"required,min=1,max=5"`
	Comment   string `validate:"max=140"`
	Name      string `validate:"required,max=100"`
	Email     string `validate:"required,email"`
	ImagePath string `validate:"omitempty,file"`
}

// WithDefaults fills the anonymous sender fields the site expects.
func (f Feedback) WithDefaults() Feedback {
	if f.Name == "" {
		f.Name = AnonymousFeedbackName
	}
	if f.Email == "" {
		f.Email = AnonymousFeedbackEmail
	}
	return f
}

type FeedbackReceipt struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// RatingLabel mirrors the site's rating choices.
func RatingLabel(rating int) string {
	switch rating {
	case 1:
		return "Ruim"
	case 2:
		return "Regular"
	case 3:
		return "Bom"
	case 4:
		return "Muito bom"
	case 5:
		return "Excelente"
	default:
		return ""
	}
}
