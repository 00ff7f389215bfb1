package cmd

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/donaldgifford/shop-inventory/internal/secret"
)

func keyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "key",
		Short: "Generate a new base64 master key",
		RunE: func(cmd *cobra.Command, _ []string) error {
			key, err := secret.GenerateKey()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), key)
			return err
		},
	}
}

func encryptCmd() *cobra.Command {
	var (
		name        string
		value       string
		generateKey bool
	)

	cmd := &cobra.Command{
		Use:   "encrypt",
		Short: "Encrypt a value into a secret table record",
		Long: "Encrypt a value and print a YAML record ready to paste into\n" +
			"secrets.yaml. With --generate-key a fresh master key is created and\n" +
			"printed to stderr.",
		Example: `  shop-crypt encrypt --name ebay__sandbox.cert_id --value SBX-1234
  shop-crypt encrypt --name postgres__user.shop.password --value s3cret --generate-key`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if name == "" {
				return errors.New("--name is required")
			}

			var key string
			if generateKey {
				generated, err := secret.GenerateKey()
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.ErrOrStderr(), "master key:", generated)
				key = generated
			} else {
				k, err := masterKey()
				if err != nil {
					return err
				}
				key = k
			}

			return encryptRecord(cmd.OutOrStdout(), key, name, []byte(value))
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "secret name")
	cmd.Flags().StringVar(&value, "value", "", "plaintext value")
	cmd.Flags().BoolVar(&generateKey, "generate-key", false, "generate a new master key")
	return cmd
}

func encryptRecord(w io.Writer, key, name string, plaintext []byte) error {
	raw, err := secret.DecodeKey(key)
	if err != nil {
		return err
	}
	s, err := secret.NewStore(raw, nil)
	if err != nil {
		return err
	}
	rec, err := s.Encrypt(plaintext)
	if err != nil {
		return err
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(map[string]secret.Record{name: rec}); err != nil {
		return fmt.Errorf("encoding record: %w", err)
	}
	return enc.Close()
}

func decryptCmd() *cobra.Command {
	var (
		name   string
		asB64  bool
		asUTF8 bool
	)

	cmd := &cobra.Command{
		Use:   "decrypt",
		Short: "Decrypt a secret from the table",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if name == "" {
				return errors.New("--name is required")
			}
			key, err := masterKey()
			if err != nil {
				return err
			}
			s, err := secret.Load(key, viper.GetString("table"))
			if err != nil {
				return err
			}
			plaintext, err := s.Decrypt(name)
			if err != nil {
				return err
			}

			out := string(plaintext)
			if asB64 {
				out = base64.StdEncoding.EncodeToString(plaintext)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "secret name")
	cmd.Flags().BoolVar(&asUTF8, "utf8", true, "print the plaintext as UTF-8")
	cmd.Flags().BoolVar(&asB64, "base64", false, "print the plaintext as base64")
	cmd.MarkFlagsMutuallyExclusive("utf8", "base64")
	return cmd
}
