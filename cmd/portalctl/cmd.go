package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/yukikurage/project-showcase-api/internal/repository"
	"github.com/yukikurage/project-showcase-api/internal/server"
	"golang.org/x/term"
	"gorm.io/gorm"
)

var (
	readPasswordFunc = term.ReadPassword // mockable

	errHelp = errors.New("help provided")
)

type commandLine struct {
	svc   *server.Services
	users repository.UserRepository
	db    *gorm.DB
	log   zerolog.Logger
	out   io.Writer
}

func newCommandLine(svc *server.Services, db *gorm.DB, log zerolog.Logger, out io.Writer) *commandLine {
	return &commandLine{
		svc:   svc,
		users: repository.NewUserRepository(db),
		db:    db,
		log:   log,
		out:   out,
	}
}

func (cli *commandLine) printUsage() {
	fmt.Fprintln(cli.out, "Usage:")
	fmt.Fprintln(cli.out, "  create-admin -email EMAIL -name NAME [-password PASSWORD]  - create an administrator")
	fmt.Fprintln(cli.out, "  add-student -email EMAIL -name NAME -batch-id ID [-batch YYYY-YYYY] [-password PASSWORD]")
	fmt.Fprintln(cli.out, "                                             - register a student, generating a password if none is given")
	fmt.Fprintln(cli.out, "  seed-batches [-file FILE]                  - create batches from a JSON file or the built-in list")
	fmt.Fprintln(cli.out, "  reset-password -email EMAIL                - reset a user's password")
	fmt.Fprintln(cli.out, "  migrate                                    - migrate the database schema")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	createAdminCmd := flag.NewFlagSet("create-admin", flag.ContinueOnError)
	createAdminEmail := createAdminCmd.String("email", "", "The admin's email")
	createAdminName := createAdminCmd.String("name", "", "The admin's display name")
	createAdminPwd := createAdminCmd.String("password", "", "The admin's password. Prompted when empty.")

	addStudentCmd := flag.NewFlagSet("add-student", flag.ContinueOnError)
	addStudentEmail := addStudentCmd.String("email", "", "The student's email")
	addStudentName := addStudentCmd.String("name", "", "The student's display name")
	addStudentBatchID := addStudentCmd.String("batch-id", "", "The batch identifier, e.g. ISE2026")
	addStudentBatch := addStudentCmd.String("batch", "", "The batch year range, e.g. 2022-2026")
	addStudentPwd := addStudentCmd.String("password", "", "The student's password. Generated when empty.")

	seedBatchesCmd := flag.NewFlagSet("seed-batches", flag.ContinueOnError)
	seedBatchesFile := seedBatchesCmd.String("file", "", "JSON file holding an array of batches")

	resetPasswordCmd := flag.NewFlagSet("reset-password", flag.ContinueOnError)
	resetPasswordEmail := resetPasswordCmd.String("email", "", "The user's email. The password will be prompted next.")

	for _, fs := range []*flag.FlagSet{createAdminCmd, addStudentCmd, seedBatchesCmd, resetPasswordCmd} {
		fs.SetOutput(cli.out)
	}

	switch args[1] {
	case "create-admin":
		if err := createAdminCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *createAdminEmail == "" || *createAdminName == "" {
			createAdminCmd.Usage()
			return errHelp
		}
		pwd := *createAdminPwd
		if pwd == "" {
			var err error
			if pwd, err = cli.promptPassword(); err != nil {
				return err
			}
			if pwd == "" {
				createAdminCmd.Usage()
				return errHelp
			}
		}
		return cli.createAdmin(*createAdminEmail, *createAdminName, pwd)

	case "add-student":
		if err := addStudentCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *addStudentEmail == "" || *addStudentName == "" || *addStudentBatchID == "" {
			addStudentCmd.Usage()
			return errHelp
		}
		return cli.addStudent(*addStudentEmail, *addStudentName, *addStudentBatchID, *addStudentBatch, *addStudentPwd)

	case "seed-batches":
		if err := seedBatchesCmd.Parse(args[2:]); err != nil {
			return err
		}
		return cli.seedBatches(*seedBatchesFile)

	case "reset-password":
		if err := resetPasswordCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *resetPasswordEmail == "" {
			resetPasswordCmd.Usage()
			return errHelp
		}
		pwd, err := cli.promptPassword()
		if err != nil {
			return err
		}
		if pwd == "" {
			resetPasswordCmd.Usage()
			return errHelp
		}
		return cli.resetPassword(*resetPasswordEmail, pwd)

	case "migrate":
		return cli.migrate()

	default:
		cli.printUsage()
		return errHelp
	}
}

func (cli *commandLine) promptPassword() (string, error) {
	fmt.Fprint(cli.out, "Enter password:")
	pwd, err := readPasswordFunc(int(os.Stdin.Fd()))
	fmt.Fprintln(cli.out)
	if err != nil {
		return "", err
	}
	return string(pwd), nil
}
