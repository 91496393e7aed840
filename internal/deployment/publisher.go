// Package deployment publishes generated report files to a remote host over
// SSH/SCP.
package deployment

import (
	"fmt"
	"io"
	"net"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/ssh"
)

// ReportPublisher copies report files to a remote directory via SSH/SCP
type ReportPublisher struct {
	keyPath    string
	publishURL string
	client     *ssh.Client
	connected  bool
}

// NewReportPublisher creates a publisher for a target in user@host:path form.
// The SSH key is read from PUBLISH_KEY_FILE, defaulting to publish.pem.
func NewReportPublisher(publishURL string) *ReportPublisher {
	keyPath := os.Getenv("PUBLISH_KEY_FILE")
	if keyPath == "" {
		keyPath = "publish.pem"
	}

	return &ReportPublisher{
		keyPath:    keyPath,
		publishURL: publishURL,
	}
}

// parsePublishURL parses a publish target in format: user@host:path
func (p *ReportPublisher) parsePublishURL() (user, host, remotePath string, err error) {
	if p.publishURL == "" {
		return "", "", "", fmt.Errorf("publish target is empty")
	}

	parts := strings.SplitN(p.publishURL, "@", 2)
	if len(parts) != 2 {
		return "", "", "", fmt.Errorf("invalid publish target format: expected user@host:path")
	}

	user = parts[0]
	hostPath := parts[1]

	hostParts := strings.SplitN(hostPath, ":", 2)
	if len(hostParts) != 2 {
		return "", "", "", fmt.Errorf("invalid publish target format: expected user@host:path")
	}

	host = hostParts[0]
	remotePath = hostParts[1]

	return user, host, remotePath, nil
}

// Connect establishes SSH connection
func (p *ReportPublisher) Connect() error {
	if p.connected {
		return nil
	}

	user, host, _, err := p.parsePublishURL()
	if err != nil {
		return fmt.Errorf("failed to parse publish target: %w", err)
	}

	keyData, err := os.ReadFile(p.keyPath)
	if err != nil {
		return fmt.Errorf("failed to read SSH key file %s: %w", p.keyPath, err)
	}

	signer, err := ssh.ParsePrivateKey(keyData)
	if err != nil {
		return fmt.Errorf("failed to parse SSH private key: %w", err)
	}

	config := &ssh.ClientConfig{
		User: user,
		Auth: []ssh.AuthMethod{
			ssh.PublicKeys(signer),
		},
		HostKeyCallback: ssh.InsecureIgnoreHostKey(), // In production, use proper host key verification
		Timeout:         30 * time.Second,
	}

	p.client, err = ssh.Dial("tcp", net.JoinHostPort(host, "22"), config)
	if err != nil {
		return fmt.Errorf("failed to connect to SSH server %s: %w", host, err)
	}

	p.connected = true
	log.Info().
		Str("host", host).
		Str("user", user).
		Msg("Successfully connected to SSH server")

	return nil
}

// Disconnect closes SSH connection
func (p *ReportPublisher) Disconnect() error {
	if p.client != nil {
		err := p.client.Close()
		p.connected = false
		p.client = nil
		return err
	}
	return nil
}

// PublishReports uploads each report file to the remote directory, stopping
// at the first failure
func (p *ReportPublisher) PublishReports(paths []string) error {
	for _, path := range paths {
		if err := p.publishFile(path); err != nil {
			return fmt.Errorf("failed to publish %s: %w", path, err)
		}
	}

	log.Info().
		Int("files", len(paths)).
		Str("target", p.publishURL).
		Msg("Published report files")

	return nil
}

// publishFile uploads a single file via SCP
func (p *ReportPublisher) publishFile(localPath string) error {
	if !p.connected {
		if err := p.Connect(); err != nil {
			return fmt.Errorf("failed to connect: %w", err)
		}
	}

	_, _, remotePath, err := p.parsePublishURL()
	if err != nil {
		return fmt.Errorf("failed to parse publish target: %w", err)
	}

	localFile, err := os.Open(localPath)
	if err != nil {
		return fmt.Errorf("failed to open local file %s: %w", localPath, err)
	}
	defer localFile.Close()

	fileInfo, err := localFile.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat local file: %w", err)
	}

	session, err := p.client.NewSession()
	if err != nil {
		return fmt.Errorf("failed to create SSH session: %w", err)
	}
	defer session.Close()

	filename := filepath.Base(localPath)
	remoteFilePath := filepath.Join(remotePath, filename)

	scpCmd := fmt.Sprintf("scp -t %s", remoteFilePath)

	stdin, err := session.StdinPipe()
	if err != nil {
		return fmt.Errorf("failed to get stdin pipe: %w", err)
	}

	err = session.Start(scpCmd)
	if err != nil {
		return fmt.Errorf("failed to start SCP session: %w", err)
	}

	// SCP sink protocol: file header, content, then a zero byte
	header := fmt.Sprintf("C0644 %d %s\n", fileInfo.Size(), filename)
	_, err = stdin.Write([]byte(header))
	if err != nil {
		return fmt.Errorf("failed to write SCP header: %w", err)
	}

	_, err = io.Copy(stdin, localFile)
	if err != nil {
		return fmt.Errorf("failed to copy file content: %w", err)
	}

	_, err = stdin.Write([]byte{0})
	if err != nil {
		return fmt.Errorf("failed to write SCP end marker: %w", err)
	}

	stdin.Close()
	err = session.Wait()
	if err != nil {
		return fmt.Errorf("SCP session failed: %w", err)
	}

	log.Info().
		Str("local_path", localPath).
		Str("remote_path", remoteFilePath).
		Int64("size", fileInfo.Size()).
		Msg("Successfully published file via SCP")

	return nil
}
