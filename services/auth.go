package services

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"lingua/models"
)

// MinPasswordLength is the registration password policy
const MinPasswordLength = 6

// SupportedLanguages are the languages a user may pick as preference
var SupportedLanguages = []string{"Spanish", "French", "German", "Italian", "Japanese"}

var validate = validator.New()

// dummyHash keeps the bcrypt comparison on the unknown-email path so
// login latency does not reveal whether an email is registered.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("lingua-dummy-password"), bcrypt.DefaultCost)

// AuthService handles registration, login verification and profile
// updates against the shared store.
type AuthService struct {
	db        *gorm.DB
	saltRound int
}

func NewAuthService(db *gorm.DB, saltRound int) *AuthService {
	return &AuthService{db: db, saltRound: saltRound}
}

// Register creates a new user. Only a one-way hash of the password is
// stored. The insert runs in one transaction: on any failure no user
// row is left behind.
func (s *AuthService) Register(email, password, confirmPassword string) (*models.User, error) {
	email = strings.TrimSpace(email)

	fieldErrs := ValidationError{}
	if err := validate.Var(email, "required,email"); err != nil {
		fieldErrs["email"] = "Invalid email!"
	}
	if len(password) < MinPasswordLength {
		fieldErrs["password"] = "Password must be at least 6 characters long!"
	}
	if password != confirmPassword {
		fieldErrs["confirm_password"] = "Passwords do not match!"
	}
	if len(fieldErrs) > 0 {
		return nil, fieldErrs
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), s.saltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return nil, err
	}

	user := models.User{
		Email:    email,
		Password: string(hashedPassword),
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		// Check first for a clean message; the unique constraint on
		// email is the backstop against concurrent registrations.
		var existing models.User
		if err := tx.Where("email = ?", email).First(&existing).Error; err == nil {
			return ValidationError{"email": "That email is already taken. Please choose a different one."}
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return tx.Create(&user).Error
	})
	if err != nil {
		var vErr ValidationError
		if errors.As(err, &vErr) {
			return nil, vErr
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ValidationError{"email": "That email is already taken. Please choose a different one."}
		}
		log.Printf("Error saving user to database: %v", err)
		return nil, err
	}

	return &user, nil
}

// Login verifies credentials and returns the matching user. Unknown
// email and wrong password produce the same error.
func (s *AuthService) Login(email, password string) (*models.User, error) {
	var user models.User
	err := s.db.Where("email = ?", strings.TrimSpace(email)).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return &user, nil
}

// GetUser loads a user by id
func (s *AuthService) GetUser(userID uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// UpdateProfile sets the user's preferred language. An empty language
// clears the preference.
func (s *AuthService) UpdateProfile(userID uint, chosenLanguage string) (*models.User, error) {
	if chosenLanguage != "" && !isSupportedLanguage(chosenLanguage) {
		return nil, ValidationError{"chosen_language": "Unsupported language!"}
	}

	user, err := s.GetUser(userID)
	if err != nil {
		return nil, err
	}

	user.ChosenLanguage = chosenLanguage
	if err := s.db.Model(user).Update("chosen_language", chosenLanguage).Error; err != nil {
		log.Printf("Error updating profile for user %d: %v", userID, err)
		return nil, err
	}

	return user, nil
}

func isSupportedLanguage(language string) bool {
	for _, l := range SupportedLanguages {
		if l == language {
			return true
		}
	}
	return false
}
