package follow

import "errors"

var (
	ErrSelfFollow   = errors.New("cannot follow yourself")
	ErrUserNotFound = errors.New("user not found")
	ErrNotFollowing = errors.New("not following this user")
)
