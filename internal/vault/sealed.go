package vault

import (
	"bytes"
	"crypto/rand"
	"fmt"
	"io"

	kerrors "github.com/walkpwd/walkpwd/internal/errors"
	"golang.org/x/crypto/nacl/secretbox"
	"golang.org/x/crypto/scrypt"
)

// Sealed file layout: magic | salt | nonce | secretbox(JSON array).
var sealedMagic = []byte("WPV1")

const (
	saltLength  = 16
	nonceLength = 24
	keyLength   = 32

	// scrypt parameters recommended for interactive logins.
	scryptN = 1 << 15
	scryptR = 8
	scryptP = 1
)

func isSealed(data []byte) bool {
	return bytes.HasPrefix(data, sealedMagic)
}

// PassphraseFunc supplies the passphrase for a sealed vault.
type PassphraseFunc func() ([]byte, error)

// SealedCodec wraps JSONCodec, sealing the serialized collection with a
// passphrase-derived key. Plaintext vault files are still readable, so
// enabling sealing on an existing vault converts it on the next write.
type SealedCodec struct {
	Passphrase PassphraseFunc

	inner      JSONCodec
	passphrase []byte
}

// NewSealedCodec returns a codec that asks fn for the passphrase on first use.
func NewSealedCodec(fn PassphraseFunc) *SealedCodec {
	return &SealedCodec{Passphrase: fn}
}

func (c *SealedCodec) Encode(entries []Entry) ([]byte, error) {
	plaintext, err := c.inner.Encode(entries)
	if err != nil {
		return nil, err
	}

	pass, err := c.loadPassphrase()
	if err != nil {
		return nil, err
	}

	salt := make([]byte, saltLength)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, fmt.Errorf("generating salt: %w", err)
	}
	key, err := deriveKey(pass, salt)
	if err != nil {
		return nil, err
	}

	var nonce [nonceLength]byte
	if _, err := io.ReadFull(rand.Reader, nonce[:]); err != nil {
		return nil, fmt.Errorf("generating nonce: %w", err)
	}

	header := make([]byte, 0, len(sealedMagic)+saltLength+nonceLength)
	header = append(header, sealedMagic...)
	header = append(header, salt...)
	header = append(header, nonce[:]...)

	return secretbox.Seal(header, plaintext, &nonce, key), nil
}

func (c *SealedCodec) Decode(data []byte) ([]Entry, error) {
	if !isSealed(data) {
		return c.inner.Decode(data)
	}

	body := data[len(sealedMagic):]
	if len(body) < saltLength+nonceLength+secretbox.Overhead {
		return nil, fmt.Errorf("%w: sealed vault is truncated", kerrors.ErrSerialization)
	}
	salt := body[:saltLength]
	var nonce [nonceLength]byte
	copy(nonce[:], body[saltLength:saltLength+nonceLength])
	box := body[saltLength+nonceLength:]

	pass, err := c.loadPassphrase()
	if err != nil {
		return nil, err
	}
	key, err := deriveKey(pass, salt)
	if err != nil {
		return nil, err
	}

	plaintext, ok := secretbox.Open(nil, box, &nonce, key)
	if !ok {
		return nil, kerrors.ErrDecryptFailed
	}
	return c.inner.Decode(plaintext)
}

func (c *SealedCodec) loadPassphrase() ([]byte, error) {
	if c.passphrase != nil {
		return c.passphrase, nil
	}
	if c.Passphrase == nil {
		return nil, kerrors.ErrPassphraseRequired
	}
	pass, err := c.Passphrase()
	if err != nil {
		return nil, err
	}
	if len(pass) == 0 {
		return nil, kerrors.ErrPassphraseRequired
	}
	c.passphrase = pass
	return pass, nil
}

func deriveKey(pass, salt []byte) (*[keyLength]byte, error) {
	derived, err := scrypt.Key(pass, salt, scryptN, scryptR, scryptP, keyLength)
	if err != nil {
		return nil, fmt.Errorf("deriving key: %w", err)
	}
	var key [keyLength]byte
	copy(key[:], derived)
	return &key, nil
}
