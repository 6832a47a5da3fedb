package token

import "gamer_social_service/pkg/config"

// 這些變數會在測試時被覆蓋，用包裝函數取代標準調用以便 mock
var (
	GenerateJWTFunc = GenerateJWT
	ParseJWTFunc    = ParseJWT
)

// GenerateJWTWrapper 讓 usecase test mock 使用這個包裝函數
func GenerateJWTWrapper(userID, role string) (string, error) {
	return GenerateJWTFunc(userID, role, config.EnvConfig.MemberService)
}

// ParseJWTWrapper 讓 usecase test mock 使用這個包裝函數
func ParseJWTWrapper(t string) (*Claims, error) {
	return ParseJWTFunc(t)
}
