package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/vita/pkg/app"
	"tableflip.dev/vita/pkg/commands/options"
	"tableflip.dev/vita/pkg/record"
	"tableflip.dev/vita/pkg/runner/add"
)

func addAdd(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a record to a collection",
		Example: `
vita add paper Attention Considered Harmful --stage drafting
vita add review --journal "J. Systems" --due 2025-01-10
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addAddPaper(cmd)
	addAddCourse(cmd)
	addAddGrant(cmd)
	addAddReview(cmd)
	addAddEditorial(cmd)
	addAddStudent(cmd)
	addAddConference(cmd)
	addAddService(cmd)
	addAddFolder(cmd)

	topLevel.AddCommand(cmd)
}

func runAdd(r *add.Add) error {
	r.App = app.Load(nil)
	return r.Do(context.Background())
}

func addAddPaper(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	paper := &record.Paper{}
	stage := ""

	cmd := &cobra.Command{
		Use:   "paper [title]",
		Short: "add a paper to the pipeline",
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a title")
			}
			paper.Title = strings.Join(args, " ")
			return nil
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			var err error
			if paper.Stage, err = record.ParseStage(stage); err != nil {
				return err
			}
			if err := options.ValidateDate("submitted", paper.SubmissionDate); err != nil {
				return err
			}
			return runAdd(&add.Add{ShowID: io.ShowID, Paper: paper})
		},
	}

	cmd.Flags().StringVar(&stage, "stage", "idea", "Pipeline stage.")
	cmd.Flags().StringVar(&paper.TargetJournal, "journal", "", "Target journal or venue.")
	cmd.Flags().StringVar(&paper.Abstract, "abstract", "", "Abstract text.")
	cmd.Flags().StringSliceVar(&paper.CoAuthors, "co-author", nil, "Co-author; repeatable.")
	cmd.Flags().StringVar(&paper.SubmissionDate, "submitted", "", "Submission date (2006-01-02).")
	cmd.Flags().StringVar(&paper.Priority, "priority", "", "Priority: low, medium, high, urgent.")
	cmd.Flags().StringVar(&paper.Notes, "notes", "", "Free-form notes.")
	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}

func addAddCourse(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	course := &record.Course{IsActive: true}

	cmd := &cobra.Command{
		Use:     "course [name]",
		Aliases: []string{"teaching"},
		Short:   "add a course",
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a course name")
			}
			course.Name = strings.Join(args, " ")
			return nil
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			return runAdd(&add.Add{ShowID: io.ShowID, Course: course})
		},
	}

	cmd.Flags().StringVar(&course.Code, "code", "", "Course code, e.g. CS451.")
	cmd.Flags().StringVar(&course.Semester, "semester", "", "Fall, Spring, or Summer.")
	cmd.Flags().IntVar(&course.Year, "year", 0, "Calendar year.")
	cmd.Flags().IntVar(&course.Enrollment, "enrollment", 0, "Enrolled students.")
	cmd.Flags().StringVar(&course.Schedule, "schedule", "", `Meeting pattern, e.g. "MWF 10:00-10:50".`)
	cmd.Flags().StringVar(&course.Location, "location", "", "Classroom.")
	cmd.Flags().StringVar(&course.TAName, "ta", "", "Teaching assistant.")
	cmd.Flags().BoolVar(&course.IsActive, "active", true, "Whether the course is currently running.")
	cmd.Flags().StringVar(&course.Notes, "notes", "", "Free-form notes.")
	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}

func addAddGrant(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	grant := &record.Grant{}
	status := ""

	cmd := &cobra.Command{
		Use:   "grant [title]",
		Short: "add a grant or proposal",
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a title")
			}
			grant.Title = strings.Join(args, " ")
			return nil
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			var err error
			if grant.Status, err = record.ParseGrantStatus(status); err != nil {
				return err
			}
			if err := options.ValidateDate("deadline", grant.SubmissionDeadline); err != nil {
				return err
			}
			return runAdd(&add.Add{ShowID: io.ShowID, Grant: grant})
		},
	}

	cmd.Flags().StringVar(&status, "status", "planning", "Grant status.")
	cmd.Flags().StringVar(&grant.Agency, "agency", "", "Funding agency.")
	cmd.Flags().Float64Var(&grant.Amount, "amount", 0, "Requested or awarded amount.")
	cmd.Flags().StringVar(&grant.Role, "role", "", "Your role: PI, Co-PI, ...")
	cmd.Flags().StringVar(&grant.SubmissionDeadline, "deadline", "", "Submission deadline (2006-01-02).")
	cmd.Flags().StringVar(&grant.StartDate, "start", "", "Project start date.")
	cmd.Flags().StringVar(&grant.EndDate, "end", "", "Project end date.")
	cmd.Flags().StringSliceVar(&grant.CoInvestigators, "co-pi", nil, "Co-investigator; repeatable.")
	cmd.Flags().StringVar(&grant.Notes, "notes", "", "Free-form notes.")
	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}

func addAddReview(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	review := &record.PeerReview{}
	status := ""

	cmd := &cobra.Command{
		Use:   "review [manuscript title]",
		Short: "add a peer review request",
		Args: func(_ *cobra.Command, args []string) error {
			review.ManuscriptTitle = strings.Join(args, " ")
			return nil
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			var err error
			if review.Status, err = record.ParseReviewStatus(status); err != nil {
				return err
			}
			if review.Journal == "" {
				return errors.New("requires --journal")
			}
			if err := options.ValidateDate("due", review.DueDate); err != nil {
				return err
			}
			return runAdd(&add.Add{ShowID: io.ShowID, Review: review})
		},
	}

	cmd.Flags().StringVar(&status, "status", "pending", "Review status.")
	cmd.Flags().StringVar(&review.Journal, "journal", "", "Requesting journal.")
	cmd.Flags().StringVar(&review.DueDate, "due", "", "Due date (2006-01-02).")
	cmd.Flags().StringVar(&review.ReceivedDate, "received", "", "Date the request arrived.")
	cmd.Flags().StringVar(&review.Notes, "notes", "", "Free-form notes.")
	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}

func addAddEditorial(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	role := &record.EditorialRole{IsActive: true}

	cmd := &cobra.Command{
		Use:   "editorial [role]",
		Short: "add an editorial role",
		Example: `
vita add editorial Associate Editor --journal "J. Systems"
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a role, e.g. Associate Editor")
			}
			role.Role = strings.Join(args, " ")
			return nil
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			if role.Journal == "" {
				return errors.New("requires --journal")
			}
			return runAdd(&add.Add{ShowID: io.ShowID, Editorial: role})
		},
	}

	cmd.Flags().StringVar(&role.Journal, "journal", "", "Journal.")
	cmd.Flags().StringVar(&role.StartDate, "start", "", "Start date.")
	cmd.Flags().StringVar(&role.EndDate, "end", "", "End date.")
	cmd.Flags().BoolVar(&role.IsActive, "active", true, "Whether the role is current.")
	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}

func addAddStudent(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	student := &record.Student{}
	status := ""

	cmd := &cobra.Command{
		Use:   "student [name]",
		Short: "add an advisee",
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a name")
			}
			student.Name = strings.Join(args, " ")
			return nil
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			var err error
			if student.Status, err = record.ParseStudentStatus(status); err != nil {
				return err
			}
			return runAdd(&add.Add{ShowID: io.ShowID, Student: student})
		},
	}

	cmd.Flags().StringVar(&status, "status", "active", "Student status.")
	cmd.Flags().StringVar((*string)(&student.Level), "level", "", "phd, masters, undergraduate, postdoc.")
	cmd.Flags().StringVar(&student.Email, "email", "", "Email address.")
	cmd.Flags().StringVar(&student.Program, "program", "", "Degree program.")
	cmd.Flags().StringVar(&student.DissertationTitle, "dissertation", "", "Working dissertation title.")
	cmd.Flags().StringVar(&student.ExpectedGraduation, "graduation", "", "Expected graduation date.")
	cmd.Flags().StringVar(&student.CommitteeRole, "committee", "", "chair, member, or reader.")
	cmd.Flags().StringVar(&student.Notes, "notes", "", "Free-form notes.")
	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}

func addAddConference(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	conf := &record.Conference{}
	status := ""

	cmd := &cobra.Command{
		Use:   "conference [name]",
		Short: "add a conference",
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a conference name")
			}
			conf.Name = strings.Join(args, " ")
			return nil
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			var err error
			if conf.Status, err = record.ParseConferenceStatus(status); err != nil {
				return err
			}
			if err := options.ValidateDate("submission-deadline", conf.SubmissionDeadline); err != nil {
				return err
			}
			if err := options.ValidateDate("registration-deadline", conf.RegistrationDeadline); err != nil {
				return err
			}
			return runAdd(&add.Add{ShowID: io.ShowID, Conference: conf})
		},
	}

	cmd.Flags().StringVar(&status, "status", "considering", "Conference status.")
	cmd.Flags().StringVar(&conf.Location, "location", "", "City / venue.")
	cmd.Flags().StringVar(&conf.StartDate, "start", "", "First day.")
	cmd.Flags().StringVar(&conf.EndDate, "end", "", "Last day.")
	cmd.Flags().StringVar(&conf.PresentationTitle, "presentation", "", "Your presentation title.")
	cmd.Flags().StringVar(&conf.PresentationType, "type", "", "paper, poster, panel, invited.")
	cmd.Flags().StringVar(&conf.SubmissionDeadline, "submission-deadline", "", "Submission deadline (2006-01-02).")
	cmd.Flags().StringVar(&conf.RegistrationDeadline, "registration-deadline", "", "Registration deadline (2006-01-02).")
	cmd.Flags().BoolVar(&conf.TravelBooked, "travel-booked", false, "Travel already booked.")
	cmd.Flags().StringVar(&conf.Notes, "notes", "", "Free-form notes.")
	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}

func addAddService(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	role := &record.ServiceRole{IsActive: true}

	cmd := &cobra.Command{
		Use:   "service [title]",
		Short: "add a service role",
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a title")
			}
			role.Title = strings.Join(args, " ")
			return nil
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			return runAdd(&add.Add{ShowID: io.ShowID, Service: role})
		},
	}

	cmd.Flags().StringVar(&role.Organization, "org", "", "Organization or committee.")
	cmd.Flags().StringVar(&role.Type, "type", "", "department, university, professional, community.")
	cmd.Flags().StringVar(&role.StartDate, "start", "", "Start date.")
	cmd.Flags().StringVar(&role.EndDate, "end", "", "End date.")
	cmd.Flags().Float64Var(&role.HoursPerMonth, "hours", 0, "Hours per month.")
	cmd.Flags().BoolVar(&role.IsActive, "active", true, "Whether the role is current.")
	cmd.Flags().StringVar(&role.Notes, "notes", "", "Free-form notes.")
	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}

func addAddFolder(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	folder := &record.LinkedFolder{}

	cmd := &cobra.Command{
		Use:   "folder [name]",
		Short: "link a working folder to a module",
		Example: `
vita add folder Review PDFs --module reviews --path ~/reviews
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a folder label")
			}
			folder.Name = strings.Join(args, " ")
			return nil
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			if folder.Path == "" {
				return errors.New("requires --path")
			}
			return runAdd(&add.Add{ShowID: io.ShowID, Folder: folder})
		},
	}

	cmd.Flags().StringVar(&folder.Module, "module", "", "papers, reviews, grants, teaching, conferences.")
	cmd.Flags().StringVar(&folder.Path, "path", "", "Directory path.")
	cmd.Flags().StringVar(&folder.Notes, "notes", "", "Free-form notes.")
	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}
