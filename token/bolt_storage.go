package token

import (
	"strings"

	"github.com/boltdb/bolt"
	jwt "github.com/dgrijalva/jwt-go"
	"github.com/pkg/errors"
)

// BoltStorage persists the viewer credential between runs.
type BoltStorage struct {
	db *bolt.DB
}

var (
	bucket        = []byte("credential-bucket")
	credentialKey = []byte("bearer")
)

func NewBoltStorage(path string) (BoltStorage, error) {
	db, err := bolt.Open(path, 0660, nil)

	if err != nil {
		return BoltStorage{}, errors.Wrapf(err, "opening credential bolt storage %s", path)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucket)

		return err
	})
	if err != nil {
		return BoltStorage{}, errors.Wrap(err, "creating credential bolt bucket")
	}

	return BoltStorage{db}, nil
}

func (b BoltStorage) Store(token string) error {
	err := b.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucket).Put(credentialKey, []byte(token))
	})

	if err != nil {
		err = errors.Wrap(err, "writing credential to storage")
	}

	return err
}

// Token returns the stored credential. An expired JWT credential is
// treated as absent, so that requests fall back to anonymous instead of
// carrying a token the server will reject.
func (b BoltStorage) Token() (string, bool) {
	var token string

	err := b.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket(bucket).Get(credentialKey); v != nil {
			token = string(v)
		}

		return nil
	})

	if err != nil || token == "" {
		return "", false
	}

	if !usable(token) {
		return "", false
	}

	return token, true
}

func (b BoltStorage) Remove() error {
	err := b.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucket).Delete(credentialKey)
	})

	if err != nil {
		err = errors.Wrap(err, "removing credential from storage")
	}

	return err
}

func (b BoltStorage) Close() error {
	return b.db.Close()
}

// usable reports whether a credential should still be attached to
// requests. Opaque tokens are always usable; JWT ones only while their
// claims are valid.
func usable(token string) bool {
	if strings.Count(token, ".") != 2 {
		return true
	}

	claims := &jwt.StandardClaims{}
	parser := &jwt.Parser{}

	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return true
	}

	return claims.Valid() == nil
}
