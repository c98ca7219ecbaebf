package main

import (
	"log"
	"os"

	"github.com/go-playground/validator/v10"

	"github.com/trezcool/examdesk/core"
	"github.com/trezcool/examdesk/core/exam"
	"github.com/trezcool/examdesk/core/user"
	logsvc "github.com/trezcool/examdesk/services/logger"
	"github.com/trezcool/examdesk/storage/database"
)

func main() {
	conf := core.NewConfig()

	logger := logsvc.NewRollbarLogger(
		log.New(os.Stderr, "ADMIN : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile),
		conf,
	)
	logger.Enable(!conf.Debug)

	// set up DB
	db, err := database.Open(conf)
	if err != nil {
		logger.Fatal("setting up database", err)
	}

	validate := validator.New()
	translator := core.NewTranslator()
	core.InitValidators(validate, translator)
	exam.InitValidators(validate, translator)

	session, err := user.NewSession(db.Users, db.Sessions)
	if err != nil {
		logger.Fatal("restoring session", err)
	}

	// start CLI
	cli := commandLine{
		session: session,
		examSvc: exam.NewService(db.Exams, validate),
		out:     os.Stdout,
	}
	err = cli.run(os.Args)
	if cerr := db.Close(); cerr != nil {
		logger.Error("closing database", cerr)
	}
	if err != nil {
		if err != errHelp {
			logger.Error(err.Error(), err)
		}
		os.Exit(1)
	}
}
