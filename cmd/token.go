package main

import (
	"fmt"
	"time"

	"github.com/pcc1news/pcc1-manager/config"
	"github.com/pcc1news/pcc1-manager/internal/auth/jwt"
	"github.com/spf13/cobra"
)

var (
	tokenSubject string
	tokenTTL     time.Duration

	tokenCmd = &cobra.Command{
		Use:   "token",
		Short: "Mint an admin api token signed with auth.jwt_secret",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(cfgFile)
			if err != nil {
				return fmt.Errorf("cannot load a config %v", err.Error())
			}
			ja, err := jwt.New(cfg.Auth.JWTSecret)
			if err != nil {
				return err
			}
			ttl := tokenTTL
			if ttl <= 0 {
				ttl = cfg.Auth.JWTTTL
			}
			tok, err := jwt.NewToken(ja, ttl, tokenSubject)
			if err != nil {
				return fmt.Errorf("can't sign token: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), tok)
			return nil
		},
	}
)

func init() {
	tokenCmd.Flags().StringVar(&tokenSubject, "subject", "admin", "token subject")
	tokenCmd.Flags().DurationVar(&tokenTTL, "ttl", 0, "token lifetime (defaults to auth.jwt_ttl)")
}
