package model

type SignUpRequest struct {
	FirstName       string `form:"first_name" validate:"required,max=100"`
	LastName        string `form:"last_name" validate:"required,max=100"`
	Username        string `form:"username" validate:"required,max=150"`
	Email           string `form:"email" validate:"required,email"`
	Password        string `form:"password" validate:"required"`
	ConfirmPassword string `form:"confirm_password" validate:"required,eqfield=Password"`
}

type LoginRequest struct {
	// Login is a username or an email address.
	Login    string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`
	Next     string `form:"next"`
}

type PasswordChangeRequest struct {
	OldPassword  string `form:"old_password" validate:"required"`
	NewPassword1 string `form:"new_password1" validate:"required"`
	NewPassword2 string `form:"new_password2" validate:"required,eqfield=NewPassword1"`
}

type PasswordResetRequest struct {
	Email string `form:"email" validate:"required,email"`
}

type PasswordResetVerifyRequest struct {
	Email        string `form:"email" validate:"required,email"`
	Code         string `form:"code" validate:"required,len=6,numeric"`
	NewPassword1 string `form:"new_password1" validate:"required"`
	NewPassword2 string `form:"new_password2" validate:"required,eqfield=NewPassword1"`
}

type ProfileUpdate struct {
	Bio              string `form:"bio" validate:"max=500"`
	ProfilePicture   string `form:"profile_picture" validate:"omitempty,url"`
	Birthplace       string `form:"birthplace" validate:"max=100"`
	CurrentResidence string `form:"current_residence" validate:"max=100"`
	Occupation       string `form:"occupation" validate:"max=100"`
}

type BookForm struct {
	Title       string        `form:"title" validate:"required,max=200"`
	Author      string        `form:"author" validate:"required,max=200"`
	Genre       string        `form:"genre" validate:"required,max=100"`
	Condition   BookCondition `form:"condition" validate:"required,oneof=new like_new good fair poor"`
	CoverImage  string        `form:"cover_image" validate:"omitempty,url"`
	Description string        `form:"description"`
}

type BookRequestForm struct {
	ReturnDate string `form:"return_date" validate:"required"`
}

type ReviewForm struct {
	ReviewText string `form:"review_text" validate:"required,max=5000"`
}

type MessageForm struct {
	Content string `form:"content" validate:"required,max=5000"`
}
