package auth

import "errors"

var (
	ErrEmailPasswordRequired = errors.New("請輸入電子郵件和密碼")
	ErrUserExists            = errors.New("用戶已存在")
	ErrInvalidCredentials    = errors.New("郵箱或密碼不正確")
	ErrUserNotFound          = errors.New("找不到用戶")
	ErrInvalidCode           = errors.New("驗證碼錯誤")
	ErrCodeExpired           = errors.New("驗證碼已過期")
	ErrAlreadyVerified       = errors.New("電子郵件已驗證")
)
