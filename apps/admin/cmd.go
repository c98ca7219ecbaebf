package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"syscall"
	"text/tabwriter"

	"golang.org/x/term"

	"github.com/trezcool/examdesk/core/exam"
	"github.com/trezcool/examdesk/core/user"
)

var (
	readPasswordFunc = term.ReadPassword // mockable

	errHelp             = errors.New("help provided")
	errNoCurrentUser    = errors.New("no current user, login first")
	errPermissionDenied = errors.New("permission denied")
)

type commandLine struct {
	session *user.Session
	examSvc *exam.Service
	out     io.Writer
}

func (cli *commandLine) printUsage() {
	fmt.Fprintln(cli.out, "Usage:")
	fmt.Fprintln(cli.out, "  whoami - print the current user")
	fmt.Fprintln(cli.out, "  login -email EMAIL - act as the user with this email, the password will be prompted next")
	fmt.Fprintln(cli.out, "  logout - clear the current user")
	fmt.Fprintln(cli.out, "  switch -id ID - act as the user with this ID")
	fmt.Fprintln(cli.out, "  menu - print the current user's menu")
	fmt.Fprintln(cli.out, "  exams [-search TEXT] [-status STATUS] - list the exams visible to the current user")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	loginCmd := flag.NewFlagSet("login", flag.ExitOnError)
	loginEmail := loginCmd.String("email", "", "The user's email. The password will be prompted next.")

	switchCmd := flag.NewFlagSet("switch", flag.ExitOnError)
	switchID := switchCmd.String("id", "", "The user's ID.")

	examsCmd := flag.NewFlagSet("exams", flag.ExitOnError)
	examsSearch := examsCmd.String("search", "", "Case-insensitive text to look for in titles and subjects.")
	examsStatus := examsCmd.String("status", exam.StatusAll, "draft|scheduled|active|completed|all")

	switch args[1] {
	case "whoami":
		return cli.whoami()
	case "login":
		if err := loginCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *loginEmail == "" {
			loginCmd.Usage()
			return errHelp
		}
		fmt.Fprint(cli.out, "Enter password:")
		pwd, err := readPasswordFunc(int(syscall.Stdin))
		fmt.Fprintln(cli.out)
		if err != nil {
			return err
		}
		return cli.login(*loginEmail, string(pwd))
	case "logout":
		return cli.logout()
	case "switch":
		if err := switchCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *switchID == "" {
			switchCmd.Usage()
			return errHelp
		}
		return cli.switchRole(*switchID)
	case "menu":
		return cli.menu()
	case "exams":
		if err := examsCmd.Parse(args[2:]); err != nil {
			return err
		}
		return cli.exams(exam.QueryFilter{Search: *examsSearch, Status: *examsStatus})
	default:
		cli.printUsage()
		return errHelp
	}
}

func (cli *commandLine) whoami() error {
	usr, ok := cli.session.CurrentUser()
	if !ok {
		return errNoCurrentUser
	}
	cli.printUser(usr)
	return nil
}

func (cli *commandLine) login(email, password string) error {
	res := cli.session.Login(email, password)
	if !res.Success {
		return errors.New(res.Error)
	}
	cli.printUser(*res.User)
	return nil
}

func (cli *commandLine) logout() error {
	if res := cli.session.Logout(); !res.Success {
		return errors.New(res.Error)
	}
	fmt.Fprintln(cli.out, "logged out")
	return nil
}

func (cli *commandLine) switchRole(id string) error {
	usr, err := cli.session.SwitchRole(id)
	if err != nil {
		return err
	}
	cli.printUser(usr)
	return nil
}

func (cli *commandLine) menu() error {
	usr, ok := cli.session.CurrentUser()
	if !ok {
		return errNoCurrentUser
	}
	for _, sec := range user.MenuFor(usr.Role) {
		fmt.Fprintf(cli.out, "%s\t%s\n", sec.ID, sec.Label)
	}
	return nil
}

// exams lists the whole filtered collection for exam viewers, and the takeable exams for students.
func (cli *commandLine) exams(filter exam.QueryFilter) error {
	usr, ok := cli.session.CurrentUser()
	if !ok {
		return errNoCurrentUser
	}

	w := tabwriter.NewWriter(cli.out, 0, 4, 2, ' ', 0)
	defer w.Flush()

	switch {
	case usr.Can(user.PermViewExams):
		filter.Clean()
		exams, err := cli.examSvc.Query(filter)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, "ID\tTITLE\tSUBJECT\tSTATUS\tSTART\tEND")
		for _, e := range exams {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n", e.ID, e.Title, e.Subject, e.Status, e.StartTime.Format(timeLayout), e.EndTime.Format(timeLayout))
		}
	case usr.Can(user.PermTakeExams):
		exams, err := cli.examSvc.Available(exam.NowFunc())
		if err != nil {
			return err
		}
		fmt.Fprintln(w, "ID\tTITLE\tSUBJECT\tAVAILABILITY\tSTART\tEND")
		for _, se := range exams {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n", se.ID, se.Title, se.Subject, se.Availability, se.StartTime.Format(timeLayout), se.EndTime.Format(timeLayout))
		}
	default:
		return errPermissionDenied
	}
	return nil
}

const timeLayout = "2006-01-02 15:04"

func (cli *commandLine) printUser(usr user.User) {
	fmt.Fprintf(cli.out, "%s <%s> (%s, id=%s)\n", usr.Name, usr.Email, usr.Role, usr.ID)
}
