package mail

import (
	"fmt"
	"strings"
)

// ComposeMatchAlert builds the subject and HTML content of the email
// sent when a saved search finds candidates it has not reported before.
func ComposeMatchAlert(searchName string, newMatchIDs []int32, matchCount int) (subject, content string) {
	subject = fmt.Sprintf("%d new candidates match your saved search %q", len(newMatchIDs), searchName)

	ids := make([]string, len(newMatchIDs))
	for i, id := range newMatchIDs {
		ids[i] = fmt.Sprintf("%d", id)
	}

	content = fmt.Sprintf(`
	<h1>New matching candidates</h1>
	<p>Your saved search %q now matches %d candidates in total.</p>
	<p>New candidate profiles: %s</p>
	`, searchName, matchCount, strings.Join(ids, ", "))

	return subject, content
}
