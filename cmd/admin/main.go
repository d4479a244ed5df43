package main

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/majdya/classroom-backend/conf"
	"github.com/majdya/classroom-backend/user"
)

func main() {
	_ = godotenv.Load()

	var rootCmd = &cobra.Command{
		Use:   "classroom",
		Short: "Admin CLI tool for the classroom backend",
	}

	var username string
	var email string
	var password string
	var role string

	var addUserCmd = &cobra.Command{
		Use:   "adduser",
		Short: "Create a user with the given role",
		Run: func(cmd *cobra.Command, args []string) {
			srvc := newUserSrvc()
			u, err := srvc.CreateUser(context.Background(), user.CreateUserParams{
				Username: username,
				Email:    email,
				Password: password,
				Role:     role,
			})
			if err != nil {
				log.Fatal(err)
			}
			fmt.Printf("created %s %s (%s)\n", u.Role, u.Username, u.ID)
		},
	}

	addUserCmd.Flags().StringVarP(&username, "username", "u", "", "Username (required)")
	addUserCmd.Flags().StringVarP(&email, "email", "e", "", "Email (required)")
	addUserCmd.Flags().StringVarP(&password, "password", "p", "", "Password (required)")
	addUserCmd.Flags().StringVarP(&role, "role", "r", "", "Role [teacher, student] (required)")

	addUserCmd.MarkFlagRequired("username")
	addUserCmd.MarkFlagRequired("email")
	addUserCmd.MarkFlagRequired("password")
	addUserCmd.MarkFlagRequired("role")

	var seedCmd = &cobra.Command{
		Use:   "seed",
		Short: "Seed demo teacher and student accounts",
		Run: func(cmd *cobra.Command, args []string) {
			srvc := newUserSrvc()
			demo := []user.CreateUserParams{
				{Username: "teacher1", Email: "teacher1@example.com", Password: "Teacher@123", Role: "teacher"},
				{Username: "student1", Email: "student1@example.com", Password: "Student@123", Role: "student"},
			}
			for _, params := range demo {
				u, err := srvc.CreateUser(context.Background(), params)
				if err != nil {
					log.Printf("skipping %s: %v", params.Username, err)
					continue
				}
				fmt.Printf("created %s %s (%s)\n", u.Role, u.Username, u.ID)
			}
		},
	}

	rootCmd.AddCommand(addUserCmd)
	rootCmd.AddCommand(seedCmd)

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func newUserSrvc() *user.UserSrvc {
	pool, err := pgxpool.New(context.Background(), conf.GetPgConnStrFromEnv())
	if err != nil {
		log.Fatalf("failed to create pg pool: %v", err)
	}
	return user.NewUserSrvc(user.NewPgRepo(pool))
}
