package mail

import (
	"fmt"
	"strings"
)

// Subjects of the notification emails
const (
	SubjectStudentRegistered = "Student Registration Details"
	SubjectStudentUpdated    = "Updated Student Information"
	SubjectFacultyRegistered = "Faculty Registration Details"
	SubjectFacultyUpdated    = "Updated Faculty Information"
	SubjectCollegeWelcome    = "Welcome to AMS"
	SubjectAttendanceStatus  = "Attendance Status"
)

// College identifies the institution a message is sent on behalf of
type College struct {
	Name  string
	Email string
}

// StudentDetails is the profile echoed back to a student
type StudentDetails struct {
	Name          string
	Email         string
	Number        string
	ParentsNumber string
	Course        string
	Department    string
	Semester      int
}

// FacultyDetails is the profile echoed back to a faculty member
type FacultyDetails struct {
	Name        string
	Email       string
	Number      string
	Designation string
	Course      string
	Department  string
}

func credentialsBlock(b *strings.Builder, password, loginURL string) {
	b.WriteString("Here are your login credentials:\n\n")
	b.WriteString("Username: your email ID is your username\n")
	fmt.Fprintf(b, "Password: %s\n\n", password)
	b.WriteString("Please keep them safe and do not share with anyone.\n\n")
	if loginURL != "" {
		fmt.Fprintf(b, "You can log in at: %s\n\n", loginURL)
	}
}

func studentBody(s StudentDetails, college College, intro, password, loginURL, closing string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hello %s,\n\n", s.Name)
	fmt.Fprintf(&b, intro+"\n\n", college.Name)
	b.WriteString("Please confirm your personal details below:\n\n")
	fmt.Fprintf(&b, "Name: %s\nStudent Number: %s\nParent's Number: %s\nCourse: %s\nDepartment: %s\nSemester: %d\n\n",
		s.Name, s.Number, s.ParentsNumber, s.Course, s.Department, s.Semester)
	b.WriteString("If any of this info is incorrect, please contact your college.\n\n")
	if password != "" {
		credentialsBlock(&b, password, loginURL)
	}
	fmt.Fprintf(&b, "%s,\n%s", closing, college.Name)
	return b.String()
}

func facultyBody(f FacultyDetails, college College, intro, password, loginURL, closing string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hello %s,\n\n", f.Name)
	fmt.Fprintf(&b, intro+"\n\n", college.Name)
	b.WriteString("Please confirm your personal details below:\n\n")
	fmt.Fprintf(&b, "Name: %s\nFaculty Number: %s\nDesignation: %s\nCourse: %s\nDepartment: %s\n\n",
		f.Name, f.Number, f.Designation, f.Course, f.Department)
	b.WriteString("If any of this info is incorrect, please contact your college.\n\n")
	if password != "" {
		credentialsBlock(&b, password, loginURL)
	}
	fmt.Fprintf(&b, "%s,\n%s", closing, college.Name)
	return b.String()
}

// StudentCredentials is sent when a student account is created
func StudentCredentials(s StudentDetails, college College, password, loginURL string) Message {
	return Message{
		To:      s.Email,
		ToName:  s.Name,
		ReplyTo: college.Email,
		Subject: SubjectStudentRegistered,
		Body:    studentBody(s, college, "Welcome! You've been registered by %s.", password, loginURL, "All the best"),
	}
}

// StudentUpdated is sent when a student profile changes
func StudentUpdated(s StudentDetails, college College) Message {
	return Message{
		To:      s.Email,
		ToName:  s.Name,
		ReplyTo: college.Email,
		Subject: SubjectStudentUpdated,
		Body:    studentBody(s, college, "This is an update from %s.", "", "", "Best regards"),
	}
}

// FacultyCredentials is sent when a faculty account is created
func FacultyCredentials(f FacultyDetails, college College, password, loginURL string) Message {
	return Message{
		To:      f.Email,
		ToName:  f.Name,
		ReplyTo: college.Email,
		Subject: SubjectFacultyRegistered,
		Body:    facultyBody(f, college, "Welcome! You've been registered by %s.", password, loginURL, "All the best"),
	}
}

// FacultyUpdated is sent when a faculty profile changes
func FacultyUpdated(f FacultyDetails, college College) Message {
	return Message{
		To:      f.Email,
		ToName:  f.Name,
		ReplyTo: college.Email,
		Subject: SubjectFacultyUpdated,
		Body:    facultyBody(f, college, "This is an update from %s.", "", "", "Best regards"),
	}
}

// CollegeWelcome greets a newly registered college
func CollegeWelcome(college College) Message {
	return Message{
		To:      college.Email,
		ToName:  college.Name,
		Subject: SubjectCollegeWelcome,
		Body: fmt.Sprintf("Welcome to AMS,\n\n"+
			"We are excited to have %s join our platform.\n\n"+
			"If you have any questions or need assistance, feel free to reach out to us.\n\n"+
			"Best regards,\nThe AMS Team", college.Name),
	}
}

// AttendanceNotice reports one marked attendance record to a student
type AttendanceNotice struct {
	StudentName  string
	StudentEmail string
	Subject      string
	Department   string
	Date         string
	Status       string
	FacultyName  string
}

// AttendanceStatus is sent to a student for every attendance record marked
func AttendanceStatus(n AttendanceNotice, college College) Message {
	body := fmt.Sprintf("Hello %s,\n\n"+
		"Your attendance has been recorded.\n\n"+
		"Subject: %s\nDepartment: %s\nDate: %s\nStatus: %s\nMarked by: %s\n\n"+
		"If this is incorrect, please contact your faculty.\n\n"+
		"Regards,\n%s",
		n.StudentName, n.Subject, n.Department, n.Date, n.Status, n.FacultyName, college.Name)
	return Message{
		To:      n.StudentEmail,
		ToName:  n.StudentName,
		ReplyTo: college.Email,
		Subject: SubjectAttendanceStatus,
		Body:    body,
	}
}
