//go:build Develop

package main

func getDbPath() string {
	return "db.sqlite"
}
