package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/vita/pkg/app"
	"tableflip.dev/vita/pkg/commands/options"
	"tableflip.dev/vita/pkg/record"
	"tableflip.dev/vita/pkg/runner/get"
	"tableflip.dev/vita/pkg/runner/update"
)

func addSet(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "set",
		Aliases: []string{"update"},
		Short:   "Update fields on an existing record",
		Example: `
vita set paper 6ba7b810... --stage submitted
vita set review 7c9e6679... --status completed
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addSetPaper(cmd)
	addSetGrant(cmd)
	addSetReview(cmd)
	addSetStudent(cmd)
	addSetConference(cmd)
	addSetCourse(cmd)
	addSetService(cmd)

	topLevel.AddCommand(cmd)
}

func oneIDArg(args []string) (string, error) {
	if len(args) != 1 {
		return "", errors.New("requires exactly one record id")
	}
	return args[0], nil
}

func runUpdate(r *update.Update) error {
	r.App = app.Load(nil)
	return r.Do(context.Background())
}

func addSetPaper(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	var stage, journal, notes, submitted, decision, priority string

	cmd := &cobra.Command{
		Use:   "paper [id]",
		Short: "update a paper",
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := oneIDArg(args)
			if err != nil {
				return err
			}
			var parsed record.Stage
			if cmd.Flags().Changed("stage") {
				if parsed, err = record.ParseStage(stage); err != nil {
					return err
				}
			}
			if err := options.ValidateDate("submitted", submitted); err != nil {
				return err
			}
			return runUpdate(&update.Update{
				ShowID: io.ShowID,
				Kind:   get.KindPapers,
				ID:     id,
				Paper: func(p *record.Paper) {
					if cmd.Flags().Changed("stage") {
						p.Stage = parsed
					}
					if cmd.Flags().Changed("journal") {
						p.TargetJournal = journal
					}
					if cmd.Flags().Changed("submitted") {
						p.SubmissionDate = submitted
					}
					if cmd.Flags().Changed("decision") {
						p.DecisionDate = decision
					}
					if cmd.Flags().Changed("priority") {
						p.Priority = priority
					}
					if cmd.Flags().Changed("notes") {
						p.Notes = notes
					}
				},
			})
		},
	}

	cmd.Flags().StringVar(&stage, "stage", "", "Pipeline stage.")
	cmd.Flags().StringVar(&journal, "journal", "", "Target journal or venue.")
	cmd.Flags().StringVar(&submitted, "submitted", "", "Submission date (2006-01-02).")
	cmd.Flags().StringVar(&decision, "decision", "", "Decision date.")
	cmd.Flags().StringVar(&priority, "priority", "", "Priority: low, medium, high, urgent.")
	cmd.Flags().StringVar(&notes, "notes", "", "Free-form notes.")
	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}

func addSetGrant(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	var status, deadline, notes string
	var amount float64

	cmd := &cobra.Command{
		Use:   "grant [id]",
		Short: "update a grant",
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := oneIDArg(args)
			if err != nil {
				return err
			}
			var parsed record.GrantStatus
			if cmd.Flags().Changed("status") {
				if parsed, err = record.ParseGrantStatus(status); err != nil {
					return err
				}
			}
			if err := options.ValidateDate("deadline", deadline); err != nil {
				return err
			}
			return runUpdate(&update.Update{
				ShowID: io.ShowID,
				Kind:   get.KindGrants,
				ID:     id,
				Grant: func(g *record.Grant) {
					if cmd.Flags().Changed("status") {
						g.Status = parsed
					}
					if cmd.Flags().Changed("amount") {
						g.Amount = amount
					}
					if cmd.Flags().Changed("deadline") {
						g.SubmissionDeadline = deadline
					}
					if cmd.Flags().Changed("notes") {
						g.Notes = notes
					}
				},
			})
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "Grant status.")
	cmd.Flags().Float64Var(&amount, "amount", 0, "Requested or awarded amount.")
	cmd.Flags().StringVar(&deadline, "deadline", "", "Submission deadline (2006-01-02).")
	cmd.Flags().StringVar(&notes, "notes", "", "Free-form notes.")
	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}

func addSetReview(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	var status, due, completed, notes string

	cmd := &cobra.Command{
		Use:   "review [id]",
		Short: "update a peer review",
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := oneIDArg(args)
			if err != nil {
				return err
			}
			var parsed record.ReviewStatus
			if cmd.Flags().Changed("status") {
				if parsed, err = record.ParseReviewStatus(status); err != nil {
					return err
				}
			}
			if err := options.ValidateDate("due", due); err != nil {
				return err
			}
			return runUpdate(&update.Update{
				ShowID: io.ShowID,
				Kind:   get.KindReviews,
				ID:     id,
				Review: func(r *record.PeerReview) {
					if cmd.Flags().Changed("status") {
						r.Status = parsed
					}
					if cmd.Flags().Changed("due") {
						r.DueDate = due
					}
					if cmd.Flags().Changed("completed") {
						r.CompletedDate = completed
					}
					if cmd.Flags().Changed("notes") {
						r.Notes = notes
					}
				},
			})
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "Review status.")
	cmd.Flags().StringVar(&due, "due", "", "Due date (2006-01-02).")
	cmd.Flags().StringVar(&completed, "completed", "", "Completion date.")
	cmd.Flags().StringVar(&notes, "notes", "", "Free-form notes.")
	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}

func addSetStudent(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	var status, dissertation, graduation, notes string

	cmd := &cobra.Command{
		Use:   "student [id]",
		Short: "update a student",
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := oneIDArg(args)
			if err != nil {
				return err
			}
			var parsed record.StudentStatus
			if cmd.Flags().Changed("status") {
				if parsed, err = record.ParseStudentStatus(status); err != nil {
					return err
				}
			}
			return runUpdate(&update.Update{
				ShowID: io.ShowID,
				Kind:   get.KindStudents,
				ID:     id,
				Student: func(s *record.Student) {
					if cmd.Flags().Changed("status") {
						s.Status = parsed
					}
					if cmd.Flags().Changed("dissertation") {
						s.DissertationTitle = dissertation
					}
					if cmd.Flags().Changed("graduation") {
						s.ExpectedGraduation = graduation
					}
					if cmd.Flags().Changed("notes") {
						s.Notes = notes
					}
				},
			})
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "Student status.")
	cmd.Flags().StringVar(&dissertation, "dissertation", "", "Working dissertation title.")
	cmd.Flags().StringVar(&graduation, "graduation", "", "Expected graduation date.")
	cmd.Flags().StringVar(&notes, "notes", "", "Free-form notes.")
	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}

func addSetConference(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	var status, presentation, notes string
	var travel bool

	cmd := &cobra.Command{
		Use:   "conference [id]",
		Short: "update a conference",
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := oneIDArg(args)
			if err != nil {
				return err
			}
			var parsed record.ConferenceStatus
			if cmd.Flags().Changed("status") {
				if parsed, err = record.ParseConferenceStatus(status); err != nil {
					return err
				}
			}
			return runUpdate(&update.Update{
				ShowID: io.ShowID,
				Kind:   get.KindConferences,
				ID:     id,
				Conference: func(c *record.Conference) {
					if cmd.Flags().Changed("status") {
						c.Status = parsed
					}
					if cmd.Flags().Changed("presentation") {
						c.PresentationTitle = presentation
					}
					if cmd.Flags().Changed("travel-booked") {
						c.TravelBooked = travel
					}
					if cmd.Flags().Changed("notes") {
						c.Notes = notes
					}
				},
			})
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "Conference status.")
	cmd.Flags().StringVar(&presentation, "presentation", "", "Your presentation title.")
	cmd.Flags().BoolVar(&travel, "travel-booked", false, "Travel already booked.")
	cmd.Flags().StringVar(&notes, "notes", "", "Free-form notes.")
	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}

func addSetCourse(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	var notes string
	var enrollment int
	var active bool

	cmd := &cobra.Command{
		Use:   "course [id]",
		Short: "update a course",
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := oneIDArg(args)
			if err != nil {
				return err
			}
			return runUpdate(&update.Update{
				ShowID: io.ShowID,
				Kind:   get.KindCourses,
				ID:     id,
				Course: func(c *record.Course) {
					if cmd.Flags().Changed("enrollment") {
						c.Enrollment = enrollment
					}
					if cmd.Flags().Changed("active") {
						c.IsActive = active
					}
					if cmd.Flags().Changed("notes") {
						c.Notes = notes
					}
				},
			})
		},
	}

	cmd.Flags().IntVar(&enrollment, "enrollment", 0, "Enrolled students.")
	cmd.Flags().BoolVar(&active, "active", true, "Whether the course is currently running.")
	cmd.Flags().StringVar(&notes, "notes", "", "Free-form notes.")
	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}

func addSetService(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	var end, notes string
	var hours float64
	var active bool

	cmd := &cobra.Command{
		Use:   "service [id]",
		Short: "update a service role",
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := oneIDArg(args)
			if err != nil {
				return err
			}
			return runUpdate(&update.Update{
				ShowID: io.ShowID,
				Kind:   get.KindService,
				ID:     id,
				Service: func(s *record.ServiceRole) {
					if cmd.Flags().Changed("end") {
						s.EndDate = end
					}
					if cmd.Flags().Changed("hours") {
						s.HoursPerMonth = hours
					}
					if cmd.Flags().Changed("active") {
						s.IsActive = active
					}
					if cmd.Flags().Changed("notes") {
						s.Notes = notes
					}
				},
			})
		},
	}

	cmd.Flags().StringVar(&end, "end", "", "End date.")
	cmd.Flags().Float64Var(&hours, "hours", 0, "Hours per month.")
	cmd.Flags().BoolVar(&active, "active", true, "Whether the role is current.")
	cmd.Flags().StringVar(&notes, "notes", "", "Free-form notes.")
	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}
