package utils

import "golang.org/x/crypto/bcrypt"

// HashPassword produit un hash bcrypt salé (coût par défaut).
func HashPassword(pw string) string {
	b, _ := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
	return string(b)
}

// CheckPassword compare en temps constant (bcrypt s'en charge).
func CheckPassword(pw, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(pw)) == nil
}
