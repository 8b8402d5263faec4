package utils

import "golang.org/x/crypto/bcrypt"

// HashPassword hashes the staff password configured through the
// environment.  The cost comes from BCRYPT_COST; values outside
// bcrypt's supported range fall back to the library default rather
// than failing login setup.
func HashPassword(plain string, cost int) (string, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	b, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// VerifyPassword reports whether plain matches the stored staff
// password hash.  The comparison is constant time.
func VerifyPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
