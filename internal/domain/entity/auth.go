package entity

// TokenPair is the result of a successful login or refresh.
// Only the refresh token is mirrored on the account record.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}
