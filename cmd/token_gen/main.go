package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"wayfarer/tracker/internal/auth"
	"wayfarer/tracker/internal/config"
	"wayfarer/tracker/internal/constants"
)

// Issues a bearer token for local testing, signed with JWT_SECRET.
func main() {
	userID := flag.String("user", "", "user id to put in the subject claim")
	admin := flag.Bool("admin", false, "grant the admin role")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	cfg := config.Load()

	role := constants.RoleUser
	if *admin {
		role = constants.RoleAdmin
	}

	token, err := auth.IssueToken([]byte(cfg.JWTSecret), *userID, role, *ttl)
	if err != nil {
		log.Fatalf("issue token: %v", err)
	}

	fmt.Println(token)
}
