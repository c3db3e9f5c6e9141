package utils

import (
	"crypto/rand"
	"regexp"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
)

type IUtils interface {
	NewULIDFromTimestamp(t time.Time) (string, error)
	IsValidName(name string) bool
	IsValidEmail(email string) bool
	IsValidPhone(phone string) bool
	ExtractContactDetails(message string) ContactDetails
}

type ContactDetails struct {
	Phone string
	Email string
}

type utils struct{}

func New() IUtils {
	return &utils{}
}

var (
	phonePattern      = regexp.MustCompile(`(\+?\d{1,3}[-.\s]?\(?\d{3,4}\)?[-.\s]?\d{3,4}[-.\s]?\d{3,4}|\d{10})`)
	emailPattern      = regexp.MustCompile(`([a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,})`)
	strictEmail       = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	strictPhone       = regexp.MustCompile(`^\+?\d{10,}$`)
	phoneNoiseChars   = regexp.MustCompile(`[\s\-()]`)
	namePattern       = regexp.MustCompile(`^[a-zA-Z\s\-']{2,30}$`)
	digitsOnlyPattern = regexp.MustCompile(`^\d+$`)
)

// Words that look like a name slot answer but are really a vehicle make or a
// part category; accepting them would corrupt the lead record.
var reservedNames = map[string]bool{
	"honda": true, "toyota": true, "ford": true, "bmw": true, "nissan": true,
	"chevrolet": true, "subaru": true, "audi": true, "volkswagen": true,
	"jeep": true, "mercedes": true,
	"battery": true, "tire": true, "brake": true, "oil": true, "filter": true,
}

func (u *utils) NewULIDFromTimestamp(t time.Time) (string, error) {
	ms := ulid.Timestamp(t)
	entropy := ulid.Monotonic(rand.Reader, 0)

	id, err := ulid.New(ms, entropy)
	if err != nil {
		return "", err
	}

	return id.String(), nil
}

func (u *utils) IsValidName(name string) bool {
	name = strings.ToLower(strings.TrimSpace(name))

	if len(name) < 2 || digitsOnlyPattern.MatchString(name) {
		return false
	}

	if reservedNames[name] {
		return false
	}

	return namePattern.MatchString(name)
}

func (u *utils) IsValidEmail(email string) bool {
	return strictEmail.MatchString(strings.TrimSpace(email))
}

func (u *utils) IsValidPhone(phone string) bool {
	clean := phoneNoiseChars.ReplaceAllString(strings.TrimSpace(phone), "")
	return strictPhone.MatchString(clean)
}

func (u *utils) ExtractContactDetails(message string) ContactDetails {
	details := ContactDetails{}

	if m := phonePattern.FindString(message); m != "" {
		details.Phone = m
	}
	if m := emailPattern.FindString(message); m != "" {
		details.Email = m
	}

	return details
}
