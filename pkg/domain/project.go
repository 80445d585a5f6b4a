package domain

// Project is the aggregate for one workflow run. It exclusively owns its
// collaborators for the duration of the run; they are constructed together
// and released together by garbage collection.
type Project struct {
	Name       string
	Client     *Client
	Freelancer *Freelancer
	Milestone  Milestone
}

// NewProject assembles a project from its collaborators. Validation of
// missing collaborators is deferred to the engine, which reports it as a
// run failure rather than a construction error.
func NewProject(name string, client *Client, freelancer *Freelancer, milestone Milestone) *Project {
	return &Project{Name: name, Client: client, Freelancer: freelancer, Milestone: milestone}
}
