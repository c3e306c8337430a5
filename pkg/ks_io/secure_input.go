// pkg/ks_io/secure_input.go

package ks_io

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/CodeMonkeyCybersecurity/keysmith/pkg/ks_err"
	cerr "github.com/cockroachdb/errors"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
	"golang.org/x/term"
)

// MaxSecretLength bounds what ReadSecret accepts, in bytes.
const MaxSecretLength = 4096

// ReadSecret reads one secret from in. When in is a terminal the prompt is
// written to prompter and the input is not echoed; otherwise a single line
// is read and its line ending stripped.
func ReadSecret(rc *RuntimeContext, in io.Reader, prompter io.Writer, prompt string) (string, error) {
	log := otelzap.Ctx(rc.Ctx)

	var (
		secret string
		err    error
	)
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		log.Debug("Reading secret from terminal without echo")
		_, _ = fmt.Fprint(prompter, prompt)
		var raw []byte
		raw, err = term.ReadPassword(int(f.Fd()))
		_, _ = fmt.Fprintln(prompter)
		if err != nil {
			return "", ks_err.NewSystemError("failed to read secret from terminal", err)
		}
		secret = string(raw)
	} else {
		log.Debug("Reading secret from stdin")
		secret, err = readLine(in)
		if err != nil {
			return "", err
		}
	}

	if err := validateSecretInput(secret); err != nil {
		log.Warn("Rejected secret input", zap.Error(err))
		return "", err
	}
	log.Debug("Read secret input", zap.Int("length", utf8.RuneCountInString(secret)))
	return secret, nil
}

// readLine reads at most MaxSecretLength bytes plus a CRLF, so an endless
// stream without a newline is cut off instead of buffered.
func readLine(in io.Reader) (string, error) {
	reader := bufio.NewReaderSize(io.LimitReader(in, MaxSecretLength+2), MaxSecretLength+2)
	line, err := reader.ReadString('\n')
	if err != nil && !cerr.Is(err, io.EOF) {
		return "", ks_err.NewSystemError("failed to read secret from stdin", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func validateSecretInput(secret string) error {
	switch {
	case secret == "":
		return ks_err.InvalidInput("no secret received",
			"Pass the secret as an argument or pipe it on stdin")
	case len(secret) > MaxSecretLength:
		return ks_err.InvalidInput(fmt.Sprintf("secret too long (%d bytes, max %d)", len(secret), MaxSecretLength))
	case !utf8.ValidString(secret):
		return ks_err.InvalidInput("secret contains invalid UTF-8 sequences")
	case strings.ContainsRune(secret, 0):
		return ks_err.InvalidInput("secret contains null bytes")
	}
	return nil
}
