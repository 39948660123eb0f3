package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strings"

	"jackut/internal/config"
	"jackut/internal/facade"
	"jackut/internal/storage"
	"jackut/pkg/logger"
)

func main() {
	// Load configuration from .env file
	cfg := config.LoadConfig()

	logger.InitLogger(cfg.LogLevel)
	logger.Log.Info("Logger initialized")

	store := storage.NewFileStore(cfg.DataFile)

	f, err := facade.New(store)
	if err != nil {
		log.Fatalf("Failed to restore system state: %v", err)
	}

	fmt.Println("jackut - type 'help' for commands, 'quit' to save and exit")

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		op, args := parseLine(line)
		if op == "quit" {
			break
		}
		if op == "help" {
			printHelp()
			continue
		}

		out, err := dispatch(f, op, args)
		if err != nil {
			fmt.Println("error:", err)
			continue
		}
		if out != "" {
			fmt.Println(out)
		}
	}

	if err := f.Shutdown(); err != nil {
		log.Fatalf("Shutdown failed: %v", err)
	}
	logger.Log.Info("System state saved, bye")
}

// parseLine splits a command line into the operation name and its
// arguments. Double-quoted arguments may contain spaces.
func parseLine(line string) (string, []string) {
	var tokens []string
	var current strings.Builder
	inQuotes := false

	for _, r := range line {
		switch {
		case r == '"':
			inQuotes = !inQuotes
		case r == ' ' && !inQuotes:
			if current.Len() > 0 {
				tokens = append(tokens, current.String())
				current.Reset()
			}
		default:
			current.WriteRune(r)
		}
	}
	if current.Len() > 0 {
		tokens = append(tokens, current.String())
	}

	if len(tokens) == 0 {
		return "", nil
	}
	return tokens[0], tokens[1:]
}

func dispatch(f *facade.Facade, op string, args []string) (string, error) {
	need := func(n int) error {
		if len(args) != n {
			return fmt.Errorf("%s expects %d argument(s), got %d", op, n, len(args))
		}
		return nil
	}

	switch op {
	case "resetSystem":
		if err := need(0); err != nil {
			return "", err
		}
		f.ResetSystem()
		return "", nil
	case "createUser":
		if err := need(3); err != nil {
			return "", err
		}
		return "", f.CreateUser(args[0], args[1], args[2])
	case "openSession":
		if err := need(2); err != nil {
			return "", err
		}
		return f.OpenSession(args[0], args[1])
	case "getUserAttribute":
		if err := need(2); err != nil {
			return "", err
		}
		return f.GetUserAttribute(args[0], args[1])
	case "editProfile":
		if err := need(3); err != nil {
			return "", err
		}
		return "", f.EditProfile(args[0], args[1], args[2])
	case "removeUser":
		if err := need(1); err != nil {
			return "", err
		}
		return "", f.RemoveUser(args[0])
	case "addFriend":
		if err := need(2); err != nil {
			return "", err
		}
		return "", f.AddFriend(args[0], args[1])
	case "isFriend":
		if err := need(2); err != nil {
			return "", err
		}
		ok, err := f.IsFriend(args[0], args[1])
		return fmt.Sprintf("%v", ok), err
	case "getFriends":
		if err := need(1); err != nil {
			return "", err
		}
		return f.GetFriends(args[0])
	case "sendMessage":
		if err := need(3); err != nil {
			return "", err
		}
		return "", f.SendMessage(args[0], args[1], args[2])
	case "readMessage":
		if err := need(1); err != nil {
			return "", err
		}
		return f.ReadMessage(args[0])
	case "addIdol":
		if err := need(2); err != nil {
			return "", err
		}
		return "", f.AddIdol(args[0], args[1])
	case "isFan":
		if err := need(2); err != nil {
			return "", err
		}
		ok, err := f.IsFan(args[0], args[1])
		return fmt.Sprintf("%v", ok), err
	case "getFans":
		if err := need(1); err != nil {
			return "", err
		}
		return f.GetFans(args[0])
	case "addCrush":
		if err := need(2); err != nil {
			return "", err
		}
		return "", f.AddCrush(args[0], args[1])
	case "isCrush":
		if err := need(2); err != nil {
			return "", err
		}
		ok, err := f.IsCrush(args[0], args[1])
		return fmt.Sprintf("%v", ok), err
	case "getCrushes":
		if err := need(1); err != nil {
			return "", err
		}
		return f.GetCrushes(args[0])
	case "addEnemy":
		if err := need(2); err != nil {
			return "", err
		}
		return "", f.AddEnemy(args[0], args[1])
	case "getEnemies":
		if err := need(1); err != nil {
			return "", err
		}
		return f.GetEnemies(args[0])
	case "createCommunity":
		if err := need(3); err != nil {
			return "", err
		}
		return "", f.CreateCommunity(args[0], args[1], args[2])
	case "getCommunityDescription":
		if err := need(1); err != nil {
			return "", err
		}
		return f.GetCommunityDescription(args[0])
	case "getCommunityOwner":
		if err := need(1); err != nil {
			return "", err
		}
		return f.GetCommunityOwner(args[0])
	case "getCommunityMembers":
		if err := need(1); err != nil {
			return "", err
		}
		return f.GetCommunityMembers(args[0])
	case "getUserCommunities":
		if err := need(1); err != nil {
			return "", err
		}
		return f.GetUserCommunities(args[0])
	case "joinCommunity":
		if err := need(2); err != nil {
			return "", err
		}
		return "", f.JoinCommunity(args[0], args[1])
	case "sendCommunityMessage":
		if err := need(3); err != nil {
			return "", err
		}
		return "", f.SendCommunityMessage(args[0], args[1], args[2])
	default:
		return "", fmt.Errorf("unknown command %q, type 'help'", op)
	}
}

func printHelp() {
	fmt.Println(`commands:
  resetSystem
  createUser <login> <password> <name>
  openSession <login> <password>
  getUserAttribute <login> <attribute>
  editProfile <session> <attribute> <value>
  removeUser <session>
  addFriend <session> <login>        isFriend <login> <login>
  getFriends <login>
  sendMessage <session> <login> <text>
  readMessage <session>
  addIdol <session> <login>          isFan <login> <idol>
  getFans <login>
  addCrush <session> <login>         isCrush <session> <login>
  getCrushes <session>
  addEnemy <session> <login>         getEnemies <login>
  createCommunity <session> <name> <description>
  getCommunityDescription <name>     getCommunityOwner <name>
  getCommunityMembers <name>         getUserCommunities <login>
  joinCommunity <session> <name>
  sendCommunityMessage <session> <name> <text>
  quit (saves state)

quoted arguments may contain spaces: createUser jp secret "Jacques Sauve"`)
}
