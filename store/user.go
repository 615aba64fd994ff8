package store

import "github.com/sheidamoradi/danesh-platform/models"

// UserPatch enumerates the mutable user fields. Credentials and role changes
// go through their own paths.
type UserPatch struct {
	Name           *string `json:"name"`
	MembershipType *string `json:"membershipType"`
	Progress       *int    `json:"progress"`
	Avatar         *string `json:"avatar"`
}

func (s *Store) ListUsers() ([]models.User, error) {
	var users []models.User
	if err := s.db.Order("id asc").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (s *Store) GetUser(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &user, nil
}

func (s *Store) GetUserByUsername(username string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, notFound(err)
	}
	return &user, nil
}

func (s *Store) CreateUser(user *models.User) error {
	if err := s.checkStruct(user); err != nil {
		return err
	}
	if user.PasswordHash == "" {
		return invalidf("password is required")
	}
	var count int64
	s.db.Model(&models.User{}).Where("username = ?", user.Username).Count(&count)
	if count > 0 {
		return invalidf("username %q is already taken", user.Username)
	}
	return s.db.Create(user).Error
}

func (s *Store) UpdateUser(id uint, patch UserPatch) (*models.User, error) {
	user, err := s.GetUser(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if patch.Name != nil {
		updates["name"] = *patch.Name
	}
	if patch.MembershipType != nil {
		updates["membership_type"] = *patch.MembershipType
	}
	if patch.Progress != nil {
		if *patch.Progress < 0 || *patch.Progress > 100 {
			return nil, invalidf("progress must be between 0 and 100")
		}
		updates["progress"] = *patch.Progress
	}
	if patch.Avatar != nil {
		updates["avatar"] = *patch.Avatar
	}

	if len(updates) == 0 {
		return user, nil
	}
	if err := s.db.Model(user).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.GetUser(id)
}

func (s *Store) DeleteUser(id uint) (bool, error) {
	res := s.db.Delete(&models.User{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
