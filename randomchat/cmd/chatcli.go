// Command-line chat client for the randomchat backend
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"randomchat/randomchat/client"
)

func main() {
	baseURL := os.Getenv("BACKEND_URL")
	if baseURL == "" {
		baseURL = "http://localhost:5000"
	}
	api := client.NewAPIClient(baseURL)
	scanner := bufio.NewScanner(os.Stdin)

	fmt.Println("Random Chatbot CLI —", baseURL)
	username := authenticate(api, scanner)
	if username == "" {
		return
	}

	session := client.NewSession(api)
	fmt.Printf("\nLogged in as %s. Type a message, or 'exit' to quit.\n\n", username)
	for {
		fmt.Print("you> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "exit" || line == "quit" {
			fmt.Println("Goodbye!")
			break
		}
		if line == "" {
			continue
		}
		reply, err := session.Submit(line)
		if err != nil {
			fmt.Println(session.ErrorMessage())
			continue
		}
		fmt.Printf("Random AI: %s\n", reply)
	}
}

// authenticate loops until a login succeeds or input ends. Registration
// drops back to the login prompt, same as the web client.
func authenticate(api *client.APIClient, scanner *bufio.Scanner) string {
	for {
		fmt.Print("login or register? [l/r]: ")
		if !scanner.Scan() {
			return ""
		}
		choice := strings.TrimSpace(scanner.Text())

		fmt.Print("username: ")
		if !scanner.Scan() {
			return ""
		}
		username := strings.TrimSpace(scanner.Text())
		fmt.Print("password: ")
		if !scanner.Scan() {
			return ""
		}
		password := strings.TrimSpace(scanner.Text())

		if choice == "r" {
			msg, err := api.Register(username, password)
			if err != nil {
				fmt.Println("registration failed:", err)
				continue
			}
			fmt.Println(msg, "Please log in.")
			continue
		}
		resp, err := api.Login(username, password)
		if err != nil {
			fmt.Println("login failed:", err)
			continue
		}
		// token kept for /api/me style calls; chat itself is ungated
		_ = resp.Token
		return resp.Username
	}
}
