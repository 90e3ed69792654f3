package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"go.uber.org/zap"

	"github.com/umair-qsols/hazwoper-knowledge-base/pkg/chat"
	"github.com/umair-qsols/hazwoper-knowledge-base/pkg/config"
	"github.com/umair-qsols/hazwoper-knowledge-base/pkg/docstore"
	"github.com/umair-qsols/hazwoper-knowledge-base/pkg/logger"
	"github.com/umair-qsols/hazwoper-knowledge-base/pkg/models"
	"github.com/umair-qsols/hazwoper-knowledge-base/pkg/session"
)

type replOptions struct {
	apiKey string
	debug  bool
}

var (
	promptStyle    = color.New(color.FgCyan, color.Bold)
	assistantStyle = color.New(color.FgGreen)
	errorStyle     = color.New(color.FgRed)
	warnStyle      = color.New(color.FgYellow)
	infoStyle      = color.New(color.FgWhite, color.Faint)
)

func runREPL(ctx context.Context, opts replOptions) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := logger.New(cfg.LogFile, opts.debug)
	defer log.Sync()

	in := bufio.NewScanner(os.Stdin)
	in.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	key := cfg.APIKey(opts.apiKey)
	if key == "" {
		promptStyle.Print("Enter Gemini API key: ")
		if !in.Scan() {
			return errors.New("no API key provided")
		}
		key = cfg.APIKey(in.Text())
	}
	if key == "" {
		// Configuration error: nothing else may run without a credential.
		return errors.New("an API key is required to proceed")
	}

	llm, err := models.NewGeminiLLM(ctx, key, cfg.Model)
	if err != nil {
		return err
	}
	defer llm.Close()

	store := docstore.NewGeminiStore(llm.Client)
	mgr := docstore.NewManager(store, log)
	mgr.PollInterval = cfg.PollInterval
	mgr.MaxPollWait = cfg.MaxPollWait
	mgr.MaxBytes = cfg.MaxUploadBytes

	engine, err := chat.NewEngine(llm, mgr, log)
	if err != nil {
		return err
	}

	sess := session.New()
	log.Info("session started", zap.String("session", sess.ID), zap.String("model", cfg.Model))

	fmt.Println("Knowledge Base chat. Type /help for commands, /quit to exit.")
	printStatus(sess)

	for {
		promptStyle.Print("you> ")
		if !in.Scan() {
			fmt.Println()
			return in.Err()
		}
		line := strings.TrimSpace(in.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "/") {
			if quit := runCommand(ctx, line, sess, mgr); quit {
				return nil
			}
			continue
		}

		reply, err := engine.Ask(ctx, sess, line)
		if err != nil {
			renderTurnError(err)
			continue
		}
		assistantStyle.Printf("assistant> %s\n", reply)
	}
}

func runCommand(ctx context.Context, line string, sess *session.Session, mgr *docstore.Manager) (quit bool) {
	cmd, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)

	switch cmd {
	case "/quit", "/exit":
		return true
	case "/help":
		printHelp()
	case "/upload":
		if arg == "" {
			warnStyle.Println("usage: /upload <path>")
			break
		}
		doUpload(ctx, arg, sess, mgr)
	case "/files":
		doListFiles(ctx, mgr)
	case "/use":
		if arg == "" {
			warnStyle.Println("usage: /use <number|display name>")
			break
		}
		doSelect(ctx, arg, sess, mgr)
	case "/mode":
		switch arg {
		case "single":
			sess.Mode = session.ModeSingle
		case "all":
			sess.Mode = session.ModeAll
		default:
			warnStyle.Println("usage: /mode single|all")
		}
		printStatus(sess)
	case "/clear":
		sess.Clear()
		infoStyle.Println("conversation cleared")
		printStatus(sess)
	default:
		warnStyle.Printf("unknown command %s (try /help)\n", cmd)
	}
	return false
}

func doUpload(ctx context.Context, path string, sess *session.Session, mgr *docstore.Manager) {
	data, err := os.ReadFile(path)
	if err != nil {
		errorStyle.Printf("upload failed: %v\n", err)
		return
	}
	name := filepath.Base(path)
	infoStyle.Printf("uploading %s...\n", name)
	handle, err := mgr.Upload(ctx, data, name)
	if err != nil {
		errorStyle.Printf("upload failed: %v\n", err)
		return
	}
	sess.SetActiveFile(handle)
	fmt.Printf("uploaded and ready: %s\n", handle.DisplayName)
	printStatus(sess)
}

func doListFiles(ctx context.Context, mgr *docstore.Manager) {
	files, err := mgr.ListAll(ctx)
	if err != nil {
		errorStyle.Printf("could not list files: %v\n", err)
		return
	}
	if len(files) == 0 {
		infoStyle.Println("no files found on the server")
		return
	}
	for i, f := range files {
		fmt.Printf("%3d. %s (%s)\n", i+1, f.DisplayName, f.State)
	}
}

func doSelect(ctx context.Context, arg string, sess *session.Session, mgr *docstore.Manager) {
	files, err := mgr.ListAll(ctx)
	if err != nil {
		errorStyle.Printf("could not list files: %v\n", err)
		return
	}
	var picked *docstore.FileHandle
	if n, err := strconv.Atoi(arg); err == nil && n >= 1 && n <= len(files) {
		picked = &files[n-1]
	} else {
		for i := range files {
			if strings.EqualFold(files[i].DisplayName, arg) {
				picked = &files[i]
				break
			}
		}
	}
	if picked == nil {
		warnStyle.Printf("no file matching %q; run /files to see what is available\n", arg)
		return
	}
	if picked.State != docstore.StateReady {
		warnStyle.Printf("note: %s is %s\n", picked.DisplayName, picked.State)
	}
	sess.SetActiveFile(*picked)
	fmt.Printf("loaded: %s\n", picked.DisplayName)
	printStatus(sess)
}

// renderTurnError shows the failure in place of the reply. Blocked turns get
// a plainer explanation than transport or model errors.
func renderTurnError(err error) {
	switch {
	case errors.Is(err, chat.ErrNoActiveFile):
		warnStyle.Println("please /upload or /use a document before chatting")
	case errors.Is(err, chat.ErrNoDocuments):
		warnStyle.Println("no files found on the server; upload some files first")
	default:
		errorStyle.Printf("assistant> an error occurred: %v\n", err)
	}
}

func printStatus(sess *session.Session) {
	active := "none"
	if sess.ActiveFile != nil {
		active = sess.ActiveFile.DisplayName
	}
	infoStyle.Printf("[mode: %s | active file: %s]\n", sess.Mode, active)
}

func printHelp() {
	fmt.Print(`commands:
  /upload <path>          upload a document and make it the active file
  /files                  list documents on the server
  /use <number|name>      make an already-uploaded document the active file
  /mode single|all        answer from the active file or from all documents
  /clear                  clear the conversation (keeps the active file)
  /quit                   exit
anything else is sent as a chat message.
`)
}
