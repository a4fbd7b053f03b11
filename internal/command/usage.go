package command

// Usage text per command word
const (
	AddUsage = "add: Adds a person to the address book. " +
		"Parameters: n/NAME p/PHONE e/EMAIL a/ADDRESS r/ROLE [tag/TAG]...\n" +
		"Example: add n/John Doe p/98765432 e/johnd@example.com a/311, Clementi Ave 2, #02-25 r/PATIENT tag/diabetic"

	EditUsage = "edit: Edits the details of the person identified by the index number used in the displayed person list. " +
		"Existing values will be overwritten by the input values.\n" +
		"Parameters: INDEX (must be a positive integer) [n/NAME] [p/PHONE] [e/EMAIL] [a/ADDRESS] [r/ROLE] [tag/TAG]...\n" +
		"Example: edit 1 p/91234567 e/johndoe@example.com"

	DeleteUsage = "delete: Deletes the person identified by the index number used in the displayed person list.\n" +
		"Parameters: INDEX (must be a positive integer)\n" +
		"Example: delete 1"

	FindUsage = "find: Finds all persons matching every given criterion. Name keywords are case-insensitive whole words.\n" +
		"Parameters: [n/KEYWORD [MORE_KEYWORDS]...] [r/ROLE] [tag/TAG]...\n" +
		"Example: find n/alice bob r/PATIENT"

	FindAppointmentUsage = "findapp: Finds all persons with an appointment within the given date and time range.\n" +
		"Parameters: startdate/DATE start/TIME enddate/DATE end/TIME\n" +
		"Example: findapp startdate/30/10/2024 start/14:00 enddate/30/10/2024 end/15:00"

	AddAppointmentUsage = "addapp: Adds an appointment to the person identified by the index number used in the displayed person list.\n" +
		"Parameters: INDEX startdate/DATE start/TIME enddate/DATE end/TIME\n" +
		"Example: addapp 1 startdate/30/10/2024 start/14:00 enddate/30/10/2024 end/15:00"

	ListUsage    = "list: Lists all persons in the address book."
	ClearUsage   = "clear: Clears all entries from the address book."
	HistoryUsage = "history: Shows previously entered commands, most recent first."
	HelpUsage    = "help: Shows program usage instructions.\nExample: help"
	ExitUsage    = "exit: Exits the program."
)
