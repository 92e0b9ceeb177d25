package internal

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sensiblebit/pfxkit"
)

// Profile classifications recorded by the scanner.
const (
	ProfileLegacy  = "legacy"
	ProfileModern  = "modern"
	ProfileCustom  = "custom"
	ProfileUnknown = "unknown"
)

// ScanOptions configures ScanDirectory.
type ScanOptions struct {
	Root string
	// Passwords are tried in order against every archive.
	Passwords []string
	// Extensions defaults to .p12 and .pfx, matched case-insensitively.
	Extensions []string
}

// ScanSummary counts the outcome of a scan.
type ScanSummary struct {
	Files   int
	Opened  int
	Locked  int
	Invalid int
}

func (o ScanOptions) matches(path string) bool {
	exts := o.Extensions
	if len(exts) == 0 {
		exts = []string{".p12", ".pfx"}
	}
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range exts {
		if ext == strings.ToLower(e) {
			return true
		}
	}
	return false
}

// ScanDirectory walks opts.Root, records every archive in cat, and returns
// counts. Unreadable files are logged and skipped.
func ScanDirectory(ctx context.Context, cat *Catalog, opts ScanOptions) (*ScanSummary, error) {
	var summary ScanSummary
	err := filepath.WalkDir(opts.Root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == opts.Root {
				return err
			}
			slog.Warn("skipping inaccessible path", "path", path, "error", err)
			return nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if d.IsDir() || !opts.matches(path) {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			slog.Warn("reading file", "path", path, "error", err)
			return nil
		}
		rec := ScanArchive(path, data, opts.Passwords)
		summary.Files++
		switch {
		case rec.Opened:
			summary.Opened++
		case rec.Profile == ProfileUnknown:
			summary.Invalid++
		default:
			summary.Locked++
		}
		if err := cat.InsertArchive(rec); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return &summary, fmt.Errorf("scanning %s: %w", opts.Root, err)
	}
	return &summary, nil
}

// ScanArchive inspects one archive and tries each password in turn. The
// record never holds the password that opened it.
func ScanArchive(path string, data []byte, passwords []string) ArchiveRecord {
	sum := sha256.Sum256(data)
	rec := ArchiveRecord{
		Path:      path,
		SHA256:    hex.EncodeToString(sum[:]),
		Size:      int64(len(data)),
		Profile:   ProfileUnknown,
		ScannedAt: time.Now().UTC(),
	}

	der, err := ArchiveBytes(data)
	if err != nil {
		rec.Error = nullString(err.Error())
		return rec
	}
	ins, err := pfxkit.Inspect(der)
	if err != nil {
		rec.Error = nullString(err.Error())
		return rec
	}
	s := ins.Structure
	if s.MAC != nil {
		rec.MACDigest = nullString(s.MAC.Digest)
		rec.MACIterations = s.MAC.Iterations
	}
	certAlg, keyAlg := structureAlgorithms(s)
	rec.CertEncryption = nullString(certAlg)
	rec.KeyEncryption = nullString(keyAlg)
	rec.Profile = ClassifyProfile(s)
	if structure, err := json.Marshal(s); err == nil {
		rec.Structure = structure
	}

	var lastErr error
	for _, pw := range passwords {
		a, err := pfxkit.DecodeArchive(der, pw)
		if err != nil {
			lastErr = err
			if errors.Is(err, pfxkit.ErrAuth) {
				continue
			}
			break
		}
		rec.Opened = true
		rec.HasKey = a.PrivateKey != nil
		rec.ChainLength = len(a.CAChain)
		if a.Certificate != nil {
			rec.Subject = nullString(a.Certificate.X509.Subject.String())
			notAfter := a.Certificate.X509.NotAfter.UTC()
			rec.NotAfter = &notAfter
		}
		return rec
	}
	if lastErr != nil && !errors.Is(lastErr, pfxkit.ErrAuth) {
		rec.Error = nullString(lastErr.Error())
	}
	slog.Debug("archive not opened", "path", path, "passwords_tried", len(passwords))
	return rec
}

// ClassifyProfile matches the visible algorithms of s against the built-in
// profiles. Iteration counts are not compared.
func ClassifyProfile(s *pfxkit.Structure) string {
	certAlg, keyAlg := structureAlgorithms(s)
	if keyAlg == "" && certAlg == "" {
		return ProfileCustom
	}
	macDigest := ""
	if s.MAC != nil {
		macDigest = s.MAC.Digest
	}
	profiles := []struct {
		name string
		cfg  pfxkit.EncryptionConfig
	}{
		{ProfileLegacy, pfxkit.LegacyEncryptConfig},
		{ProfileModern, pfxkit.ModernEncryptConfig},
	}
	for _, p := range profiles {
		if certAlg == p.cfg.CertificateAlgorithm.String() &&
			keyAlg == p.cfg.PrivateKeyAlgorithm.String() &&
			macDigest == p.cfg.MACDigest.String() {
			return p.name
		}
	}
	return ProfileCustom
}

// structureAlgorithms returns the names of the first encrypted content and
// the first shrouded key visible without a password.
func structureAlgorithms(s *pfxkit.Structure) (certAlg, keyAlg string) {
	for _, c := range s.Contents {
		if c.Encrypted && c.Encryption != nil && certAlg == "" {
			certAlg = c.Encryption.Name
		}
		for _, b := range c.Bags {
			if b.Encryption != nil && keyAlg == "" {
				keyAlg = b.Encryption.Name
			}
		}
	}
	return certAlg, keyAlg
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
