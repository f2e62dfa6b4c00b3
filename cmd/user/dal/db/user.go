package db

import (
	"context"
	"strings"

	"VidTube.com/cmd/model"
	"VidTube.com/pkg/utils"
	"github.com/pkg/errors"
)

const TableName = "users"

// UserWithPassword 内部数据库模型，包含密码字段
type UserWithPassword struct {
	UserId    int64  `gorm:"column:user_id" json:"user_id"`
	UserName  string `gorm:"column:user_name" json:"user_name"`
	FullName  string `gorm:"column:full_name" json:"full_name"`
	Password  string `gorm:"column:password" json:"-"`
	Email     string `gorm:"column:email" json:"email"`
	AvatarUrl string `gorm:"column:avatar_url" json:"avatar_url"`
	CoverUrl  string `gorm:"column:cover_url" json:"cover_url"`
	CreatedAt string `gorm:"column:created_at" json:"created_at"`
	UpdatedAt string `gorm:"column:updated_at" json:"updated_at"`
}

func (u *UserWithPassword) TableName() string {
	return TableName
}

func (u *UserWithPassword) toPublicUser() *model.User {
	return &model.User{
		UserId:    u.UserId,
		UserName:  u.UserName,
		FullName:  u.FullName,
		Email:     u.Email,
		AvatarUrl: u.AvatarUrl,
		CoverUrl:  u.CoverUrl,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func CreateUser(ctx context.Context, user *UserWithPassword) (*model.User, error) {
	user.UserName = strings.ToLower(user.UserName)
	if err := DB.WithContext(ctx).Create(user).Error; err != nil {
		return nil, errors.Wrapf(err, "CreateUser failed,err: %v", err)
	}
	return user.toPublicUser(), nil
}

// CheckUser verifies the password of the named user and returns the public row.
func CheckUser(ctx context.Context, username, password string) (*model.User, error, bool) {
	var userWithPassword UserWithPassword
	var count int64
	if err := DB.WithContext(ctx).Model(&UserWithPassword{}).
		Where("user_name=?", strings.ToLower(username)).
		Count(&count).Find(&userWithPassword).Error; err != nil {
		return nil, errors.Wrap(err, "query user failed"), false
	}
	if count == 0 {
		return nil, errors.Errorf("user does not exist"), false
	}
	if err, flag := utils.VerifyPassword(password, userWithPassword.Password); !flag {
		return nil, errors.Wrapf(err, "Password Wrong,err:%v", err), false
	}
	return userWithPassword.toPublicUser(), nil, true
}

func GetUser(ctx context.Context, userId int64) (*model.User, error) {
	var user UserWithPassword
	var count int64
	if err := DB.WithContext(ctx).Model(&UserWithPassword{}).
		Where("user_id=?", userId).Count(&count).Find(&user).Error; err != nil {
		return nil, errors.Wrapf(err, "GetUser failed,err: %v", err)
	}
	if count == 0 {
		return nil, nil
	}
	return user.toPublicUser(), nil
}

// GetUserByName looks the user up by case-normalized username.
func GetUserByName(ctx context.Context, username string) (*model.User, error) {
	var user UserWithPassword
	var count int64
	if err := DB.WithContext(ctx).Model(&UserWithPassword{}).
		Where("user_name=?", strings.ToLower(username)).
		Count(&count).Find(&user).Error; err != nil {
		return nil, errors.Wrapf(err, "GetUserByName failed,err: %v", err)
	}
	if count == 0 {
		return nil, nil
	}
	return user.toPublicUser(), nil
}

func CheckUserExistByNameOrEmail(ctx context.Context, username, email string) (bool, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&UserWithPassword{}).
		Where("user_name=? OR email=?", strings.ToLower(username), email).
		Count(&count).Error; err != nil {
		return false, errors.Wrapf(err, "CheckUserExist failed,err:%v", err)
	}
	return count > 0, nil
}

func CheckUserExistById(ctx context.Context, userId int64) (bool, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&UserWithPassword{}).Where("user_id=?", userId).Count(&count).Error; err != nil {
		return false, errors.Wrapf(err, "CheckUserExistById failed,err:%v", err)
	}
	return count > 0, nil
}

// GetUserPassword fetches the stored hash for a password change.
func GetUserPassword(ctx context.Context, userId int64) (string, error) {
	var password string
	if err := DB.WithContext(ctx).Model(&UserWithPassword{}).
		Where("user_id=?", userId).Select("password").Find(&password).Error; err != nil {
		return "", errors.Wrapf(err, "GetUserPassword failed,err:%v", err)
	}
	return password, nil
}

func UpdateUserPassword(ctx context.Context, userId int64, hashedPassword, updatedAt string) error {
	if err := DB.WithContext(ctx).Model(&UserWithPassword{}).Where("user_id=?", userId).Updates(map[string]interface{}{
		"password":   hashedPassword,
		"updated_at": updatedAt,
	}).Error; err != nil {
		return errors.Wrapf(err, "UpdateUserPassword failed,err: %v", err)
	}
	return nil
}

// UpdateAccount updates the caller-editable profile fields. Empty values are
// left untouched.
func UpdateAccount(ctx context.Context, userId int64, fullName, email, updatedAt string) error {
	fields := map[string]interface{}{"updated_at": updatedAt}
	if fullName != "" {
		fields["full_name"] = fullName
	}
	if email != "" {
		fields["email"] = email
	}
	if err := DB.WithContext(ctx).Model(&UserWithPassword{}).Where("user_id=?", userId).
		Updates(fields).Error; err != nil {
		return errors.Wrapf(err, "UpdateAccount failed,err: %v", err)
	}
	return nil
}

func UpdateAvatarUrl(ctx context.Context, userId int64, avatarUrl, updatedAt string) error {
	if err := DB.WithContext(ctx).Model(&UserWithPassword{}).Where("user_id=?", userId).Updates(map[string]interface{}{
		"avatar_url": avatarUrl,
		"updated_at": updatedAt,
	}).Error; err != nil {
		return errors.Wrapf(err, "UpdateAvatarUrl failed,err: %v", err)
	}
	return nil
}

func UpdateCoverUrl(ctx context.Context, userId int64, coverUrl, updatedAt string) error {
	if err := DB.WithContext(ctx).Model(&UserWithPassword{}).Where("user_id=?", userId).Updates(map[string]interface{}{
		"cover_url":  coverUrl,
		"updated_at": updatedAt,
	}).Error; err != nil {
		return errors.Wrapf(err, "UpdateCoverUrl failed,err: %v", err)
	}
	return nil
}

// GetUsersByIds resolves a batch of ids to public rows, keyed by id.
func GetUsersByIds(ctx context.Context, userIds []int64) (map[int64]*model.User, error) {
	var users []*UserWithPassword
	if err := DB.WithContext(ctx).Model(&UserWithPassword{}).Where("user_id IN (?)", userIds).Find(&users).Error; err != nil {
		return nil, errors.Wrapf(err, "GetUsersByIds failed,err:%v", err)
	}
	result := make(map[int64]*model.User, len(users))
	for _, u := range users {
		result[u.UserId] = u.toPublicUser()
	}
	return result, nil
}
