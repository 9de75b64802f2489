package user

import (
	"ReelHub.com/cmd/user/service"
	"ReelHub.com/pkg/mq"
)

var (
	store    service.UserStore
	recorder mq.Recorder
)

// Init wires the handler package; called once from main.
func Init(s service.UserStore, r mq.Recorder) {
	store = s
	recorder = r
}

type CreateUserParam struct {
	Username       string `json:"username"`
	Email          string `json:"email"`
	Password       string `json:"password"`
	Mobile         string `json:"mobile"`
	ProfilePicture string `json:"profilePicture"`
	Bio            string `json:"bio"`
}

type UpdateUserParam struct {
	Username        string `json:"username"`
	ProfilePicture  string `json:"profilePicture"`
	Bio             string `json:"bio"`
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
	IsSuspended     *bool  `json:"isSuspended"`
}

type FollowParam struct {
	UserId string `json:"userId,required"`
}
