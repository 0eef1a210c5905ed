//go:build !Develop

package main

import (
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
)

func getDbPath() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		log.Fatal().Err(err).Msg("Could not find user cache directory")
	}

	dirPath := filepath.Join(dir, "ContentForm")
	filePath := filepath.Join(dirPath, "db.sqlite")

	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		err = os.Mkdir(dirPath, os.ModePerm)
		if err != nil {
			log.Fatal().Err(err).Str("Path", dirPath).Msg("Could not create cache directory")
		}
	}

	return filePath
}
