package domain

// AllTeams - значение поля team у администраторов: доступ ко всем командам
const AllTeams = "all"

// TeamRoster - фиксированный состав команды
type TeamRoster struct {
	Name    string
	Members []string
}

// Teams - известные команды и их состав, порядок используется при выборе команды
var Teams = []TeamRoster{
	{
		Name: "Hawk Force",
		Members: []string{
			"Utsav Chauhan", "Faisal Iqbal", "Sarosh Abdulah Khan", "Vivek Tyagi",
			"Mohit Bainsla", "Santosh Gupta", "Vivek Kumar", "Rashmi Payasi",
		},
	},
	{
		Name: "Guarding Tigers",
		Members: []string{
			"Akash Jain", "Rupesh Singh", "Himanshu Mishra", "Vishwas", "Shweta",
			"Shubham", "Jaideep Khanna", "Dawar Ali", "Nisha", "Varun",
		},
	},
	{
		Name: "Speed Demons",
		Members: []string{
			"Kapil Arora", "Himanshu Tiwari", "Aman kumar", "Ansh verma",
			"Jeevan Singh", "Lavnya", "Jyoti Vishwakarna", "Anil kumar",
		},
	},
}

// TeamNames возвращает названия команд в порядке Teams
func TeamNames() []string {
	names := make([]string, len(Teams))
	for i, t := range Teams {
		names[i] = t.Name
	}
	return names
}

// IsKnownTeam проверяет, что команда входит в фиксированный список
func IsKnownTeam(name string) bool {
	for _, t := range Teams {
		if t.Name == name {
			return true
		}
	}
	return false
}
