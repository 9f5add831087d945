package services

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"

	"github.com/inkwell-blog/inkwell/pkg/internal/database"
	"github.com/inkwell-blog/inkwell/pkg/internal/models"
)

func GetAccountWithID(id uint) (models.Account, error) {
	var account models.Account
	if err := database.C.Where("id = ?", id).First(&account).Error; err != nil {
		return account, fmt.Errorf("unable to get account by id: %v", err)
	}
	return account, nil
}

func NewAccount(name, email, password string) (models.Account, error) {
	var account models.Account
	if err := database.C.Where("email = ?", email).First(&account).Error; err == nil {
		return account, fmt.Errorf("account with email %s already exists", email)
	}

	digest, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return account, fmt.Errorf("unable to digest password: %v", err)
	}

	account = models.Account{
		Name:     name,
		Email:    email,
		Password: string(digest),
	}

	err = database.C.Save(&account).Error

	return account, err
}

// LoginAccount checks the credentials and issues a fresh bearer token.
// Both failure paths share one message so callers cannot probe which
// emails are registered.
func LoginAccount(email, password string) (models.Account, string, error) {
	var account models.Account
	if err := database.C.Where("email = ?", email).First(&account).Error; err != nil {
		return account, "", fmt.Errorf("invalid email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(password)); err != nil {
		return account, "", fmt.Errorf("invalid email or password")
	}

	token, err := IssueToken(account)
	if err != nil {
		return account, "", err
	}

	return account, token, nil
}

func IssueToken(account models.Account) (string, error) {
	lifetime := viper.GetDuration("security.token_lifetime")
	if lifetime <= 0 {
		lifetime = 7 * 24 * time.Hour
	}

	claims := jwt.RegisteredClaims{
		Subject:   strconv.Itoa(int(account.ID)),
		Issuer:    "inkwell",
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(lifetime)),
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(viper.GetString("security.jwt_secret")))
}

func AuthenticateToken(tokenString string) (models.Account, error) {
	var account models.Account

	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(viper.GetString("security.jwt_secret")), nil
	})
	if err != nil || !token.Valid {
		return account, fmt.Errorf("invalid bearer token: %v", err)
	}

	claims := token.Claims.(*jwt.RegisteredClaims)
	id, err := strconv.Atoi(claims.Subject)
	if err != nil {
		return account, fmt.Errorf("malformed token subject: %v", err)
	}

	return GetAccountWithID(uint(id))
}
