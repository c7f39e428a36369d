// Package awsorg implements the organization directory on the AWS
// Organizations API, authenticated through an assumed-role session.
package awsorg

import (
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials/stscreds"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/organizations"

	coreerrors "github.com/orgpull/orgpull/core/errors"
	"github.com/orgpull/orgpull/core/orgdir"
)

// organizationsRegion is where the Organizations control plane lives.
const organizationsRegion = "us-east-1"

// api is the slice of the Organizations API this package calls, kept as an
// interface so the response mapping is testable without AWS.
type api interface {
	ListRoots(input *organizations.ListRootsInput) (*organizations.ListRootsOutput, error)
	ListOrganizationalUnitsForParent(input *organizations.ListOrganizationalUnitsForParentInput) (*organizations.ListOrganizationalUnitsForParentOutput, error)
	ListAccountsForParent(input *organizations.ListAccountsForParentInput) (*organizations.ListAccountsForParentOutput, error)
}

// Client adapts the Organizations API to orgdir.Client. One client holds one
// assumed-role session, reused for every lookup of a run. No retry or
// backoff beyond what the SDK performs itself.
type Client struct {
	api api
}

// New builds a directory client whose credentials come from assuming
// arn:aws:iam::<organizationAccount>:role/<assumeRole>.
func New(organizationAccount, assumeRole string) (*Client, error) {
	baseSession, err := session.NewSession(aws.NewConfig().WithRegion(organizationsRegion))
	if err != nil {
		return nil, wrapDirectoryError(fmt.Errorf("create session: %w", err))
	}
	roleARN := fmt.Sprintf("arn:aws:iam::%s:role/%s", organizationAccount, assumeRole)
	credentials := stscreds.NewCredentials(baseSession, roleARN)
	service := organizations.New(baseSession, aws.NewConfig().WithCredentials(credentials))
	return &Client{api: service}, nil
}

// Root returns the organization's root node. Organizations with multiple
// roots are not expected; the first root wins.
func (c *Client) Root() (orgdir.OU, error) {
	output, err := c.api.ListRoots(&organizations.ListRootsInput{})
	if err != nil {
		return orgdir.OU{}, wrapDirectoryError(fmt.Errorf("list roots: %w", err))
	}
	if len(output.Roots) == 0 {
		return orgdir.OU{}, wrapDirectoryError(fmt.Errorf("organization has no root"))
	}
	root := output.Roots[0]
	return orgdir.OU{
		ID:   aws.StringValue(root.Id),
		Name: aws.StringValue(root.Name),
		Path: "/",
	}, nil
}

func (c *Client) ChildOUs(parentID, pageToken string) ([]orgdir.OU, string, error) {
	input := &organizations.ListOrganizationalUnitsForParentInput{
		ParentId: aws.String(parentID),
	}
	if pageToken != "" {
		input.NextToken = aws.String(pageToken)
	}
	output, err := c.api.ListOrganizationalUnitsForParent(input)
	if err != nil {
		return nil, "", wrapDirectoryError(fmt.Errorf("list child OUs of %s: %w", parentID, err))
	}
	children := make([]orgdir.OU, 0, len(output.OrganizationalUnits))
	for _, unit := range output.OrganizationalUnits {
		children = append(children, orgdir.OU{
			ID:   aws.StringValue(unit.Id),
			Name: aws.StringValue(unit.Name),
		})
	}
	return children, aws.StringValue(output.NextToken), nil
}

func (c *Client) Accounts(parentID, pageToken string) ([]orgdir.Account, string, error) {
	input := &organizations.ListAccountsForParentInput{
		ParentId: aws.String(parentID),
	}
	if pageToken != "" {
		input.NextToken = aws.String(pageToken)
	}
	output, err := c.api.ListAccountsForParent(input)
	if err != nil {
		return nil, "", wrapDirectoryError(fmt.Errorf("list accounts of %s: %w", parentID, err))
	}
	accounts := make([]orgdir.Account, 0, len(output.Accounts))
	for _, account := range output.Accounts {
		accounts = append(accounts, orgdir.Account{
			ID:     aws.StringValue(account.Id),
			Email:  aws.StringValue(account.Email),
			Name:   aws.StringValue(account.Name),
			Status: aws.StringValue(account.Status),
		})
	}
	return accounts, aws.StringValue(output.NextToken), nil
}

func wrapDirectoryError(cause error) error {
	return coreerrors.Wrap(
		cause,
		coreerrors.CategoryDirectory,
		"directory_failure",
		"verify the assumed role can call the Organizations API",
		false,
	)
}
