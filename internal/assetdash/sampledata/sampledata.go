// Package sampledata 提供编译进二进制的默认数据集
package sampledata

import (
	"embed"
	"fmt"

	"github.com/jimyag/assetdash/internal/assetdash/entity"
	"golang.org/x/crypto/ssh"
	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var dataFS embed.FS

// Certificates 默认证书数据集
func Certificates() ([]entity.Certificate, error) {
	return decode[entity.Certificate]("certificates.yaml")
}

// SSHKeys 默认 SSH 密钥数据集，缺失的指纹和密钥类型由公钥推导
func SSHKeys() ([]entity.SSHKey, error) {
	keys, err := decode[entity.SSHKey]("ssh_keys.yaml")
	if err != nil {
		return nil, err
	}
	for i := range keys {
		if err := DeriveSSHKey(&keys[i]); err != nil {
			return nil, fmt.Errorf("ssh key %s: %w", keys[i].ID, err)
		}
	}
	return keys, nil
}

// CodeSigningKeys 默认代码签名密钥数据集
func CodeSigningKeys() ([]entity.CodeSigningKey, error) {
	return decode[entity.CodeSigningKey]("code_signing_keys.yaml")
}

// AuditLogs 默认审计日志数据集
func AuditLogs() ([]entity.AuditLog, error) {
	return decode[entity.AuditLog]("audit_logs.yaml")
}

// DeriveSSHKey 根据 authorized_keys 格式的公钥补全指纹和密钥类型
// 已有的值保持不变，没有公钥时不做任何处理
func DeriveSSHKey(key *entity.SSHKey) error {
	if key.PublicKey == "" || (key.Fingerprint != "" && key.KeyType != "") {
		return nil
	}
	pub, _, _, _, err := ssh.ParseAuthorizedKey([]byte(key.PublicKey))
	if err != nil {
		return fmt.Errorf("parse public key: %w", err)
	}
	if key.Fingerprint == "" {
		key.Fingerprint = ssh.FingerprintSHA256(pub)
	}
	if key.KeyType == "" {
		key.KeyType = pub.Type()
	}
	return nil
}

// decode 每次调用都重新解析，返回的切片归调用方所有
func decode[T any](name string) ([]T, error) {
	data, err := dataFS.ReadFile("data/" + name)
	if err != nil {
		return nil, fmt.Errorf("read dataset %s: %w", name, err)
	}
	var items []T
	if err := yaml.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("parse dataset %s: %w", name, err)
	}
	return items, nil
}
