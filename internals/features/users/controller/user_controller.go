package controller

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"log"
	"strings"
	"time"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"mahotsav_backend/internals/configs"
	"mahotsav_backend/internals/features/users/dto"
	"mahotsav_backend/internals/features/users/model"
	"mahotsav_backend/internals/features/users/service"
	helper "mahotsav_backend/internals/helpers"
	"mahotsav_backend/internals/helpers/auth"
	authmw "mahotsav_backend/internals/middlewares/auth"
)

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

/* =========================================================
   REGISTER  POST /api/users/register
========================================================= */

func (uc *UserController) Register(c *fiber.Ctx) error {
	var req dto.RegisterUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	dob, err := dto.ParseDOB(req.DOB)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	user := model.UserModel{
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
		Email:     strings.ToLower(strings.TrimSpace(req.Email)),
		DOB:       dob,
		Phone:     strings.TrimSpace(req.Phone),
		College:   strings.TrimSpace(req.College),
		Password:  req.Password,
	}
	if err := user.Validate(); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var count int64
	if err := uc.DB.Model(&model.UserModel{}).Where("email = ?", user.Email).Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check existing user")
	}
	if count > 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "User already exists")
	}

	mhid, err := service.GenerateMHID(uc.DB)
	if err != nil {
		log.Printf("[ERROR] mhid generation failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to generate registration id")
	}
	user.MHID = mhid

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to secure password")
	}
	user.Password = string(hashed)

	if err := uc.DB.Create(&user).Error; err != nil {
		low := strings.ToLower(err.Error())
		if strings.Contains(low, "duplicate key") || strings.Contains(low, "unique") {
			return helper.JsonError(c, fiber.StatusBadRequest, "User already exists")
		}
		log.Printf("[ERROR] create user: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to register user")
	}

	token, err := auth.GenerateUserToken(user.ID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to issue token")
	}

	return helper.JsonCreated(c, "User registered successfully", dto.ToAuthUserResponse(&user, token))
}

/* =========================================================
   LOGIN  POST /api/users/login
========================================================= */

func (uc *UserController) Login(c *fiber.Ctx) error {
	var req dto.LoginUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if req.MHID == "" || req.Password == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Please provide Mahotsav ID and password")
	}

	var user model.UserModel
	err := uc.DB.Where("mhid = ?", strings.TrimSpace(req.MHID)).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid Mahotsav ID or password")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to look up user")
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid Mahotsav ID or password")
	}

	token, err := auth.GenerateUserToken(user.ID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to issue token")
	}

	return helper.JsonOK(c, "Login successful", dto.ToAuthUserResponse(&user, token))
}

/* =========================================================
   LOGIN GOOGLE  POST /api/users/login/google
========================================================= */

func (uc *UserController) LoginGoogle(c *fiber.Ctx) error {
	var req dto.GoogleLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if req.IDToken == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "idToken is required")
	}

	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(req.IDToken, []string{configs.GoogleClientID}); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid Google ID token")
	}
	claimSet, err := googleAuthIDTokenVerifier.Decode(req.IDToken)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to decode ID token")
	}

	googleID := claimSet.Sub
	email := strings.ToLower(claimSet.Email)

	var user model.UserModel
	err = uc.DB.Where("google_id = ?", googleID).Or("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		mhid, mErr := service.GenerateMHID(uc.DB)
		if mErr != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to generate registration id")
		}
		first, last := splitGoogleName(claimSet.Name)
		user = model.UserModel{
			FirstName: first,
			LastName:  last,
			Email:     email,
			DOB:       time.Now().UTC(),
			Password:  randomPassword(),
			MHID:      mhid,
			GoogleID:  &googleID,
		}
		if cErr := uc.DB.Create(&user).Error; cErr != nil {
			log.Printf("[ERROR] create google user: %v", cErr)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to register user")
		}
	} else if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to look up user")
	} else if user.GoogleID == nil {
		// Link the Google identity to the existing email account.
		if uErr := uc.DB.Model(&user).Update("google_id", googleID).Error; uErr != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to link Google account")
		}
	}

	token, err := auth.GenerateUserToken(user.ID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to issue token")
	}
	return helper.JsonOK(c, "Login successful", dto.ToAuthUserResponse(&user, token))
}

func splitGoogleName(full string) (string, string) {
	parts := strings.SplitN(strings.TrimSpace(full), " ", 2)
	first := parts[0]
	last := ""
	if len(parts) > 1 {
		last = parts[1]
	}
	if first == "" {
		first = "Attendee"
	}
	return first, last
}

func randomPassword() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

/* =========================================================
   PROFILE  GET /api/users/profile
========================================================= */

func (uc *UserController) GetProfile(c *fiber.Ctx) error {
	user, err := uc.currentUser(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}
	return helper.JsonOK(c, "Profile fetched successfully", dto.ToUserResponse(user))
}

/* =========================================================
   UPDATE PROFILE  PUT /api/users/profile
========================================================= */

func (uc *UserController) UpdateProfile(c *fiber.Ctx) error {
	user, err := uc.currentUser(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}

	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	updates := map[string]any{}
	if req.FirstName != nil {
		updates["first_name"] = strings.TrimSpace(*req.FirstName)
	}
	if req.LastName != nil {
		updates["last_name"] = strings.TrimSpace(*req.LastName)
	}
	if req.Email != nil {
		updates["email"] = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.Phone != nil {
		updates["phone"] = strings.TrimSpace(*req.Phone)
	}
	if req.College != nil {
		updates["college"] = strings.TrimSpace(*req.College)
	}
	if req.DOB != nil {
		dob, pErr := dto.ParseDOB(*req.DOB)
		if pErr != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, pErr.Error())
		}
		updates["dob"] = dob
	}
	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "No fields to update")
	}

	if err := uc.DB.Model(user).Updates(updates).Error; err != nil {
		low := strings.ToLower(err.Error())
		if strings.Contains(low, "duplicate key") || strings.Contains(low, "unique") {
			return helper.JsonError(c, fiber.StatusBadRequest, "Email already in use")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update profile")
	}

	var updated model.UserModel
	if err := uc.DB.Where("id = ?", user.ID).First(&updated).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to reload profile")
	}
	return helper.JsonUpdated(c, "Profile updated successfully", dto.ToUserResponse(&updated))
}

/* =========================================================
   CHANGE PASSWORD  PUT /api/users/changepassword
========================================================= */

func (uc *UserController) ChangePassword(c *fiber.Ctx) error {
	user, err := uc.currentUser(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}

	var req dto.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if req.CurrentPassword == "" || req.NewPassword == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Please provide both current and new password")
	}
	if len(req.NewPassword) < 6 {
		return helper.JsonError(c, fiber.StatusBadRequest, "New password must be at least 6 characters")
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.CurrentPassword)) != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Current password is incorrect")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to secure password")
	}
	if err := uc.DB.Model(user).Update("password", string(hashed)).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to change password")
	}
	return helper.JsonUpdated(c, "Password updated successfully", nil)
}

func (uc *UserController) currentUser(c *fiber.Ctx) (*model.UserModel, error) {
	id, ok := c.Locals(authmw.LocUserID).(string)
	if !ok || id == "" {
		return nil, gorm.ErrRecordNotFound
	}
	var user model.UserModel
	if err := uc.DB.Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
