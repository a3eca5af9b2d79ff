package mail

import "fmt"

// welcomeEmailHTML renders the welcome email body. The layout mirrors the
// template shipped to users at launch.
func welcomeEmailHTML(name, clientURL string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="pt-br">
<head>
  <meta charset="UTF-8">
  <title>Bem-vindo ao Talkalot!</title>
</head>
<body style="font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; line-height: 1.6; color: #EAEAEA; max-width: 600px; margin: 0 auto; padding: 20px; background-color: #0F2027;">
  <div style="background: linear-gradient(135deg, #203A43, #2C5364); padding: 30px; text-align: center; border-radius: 12px 12px 0 0;">
    <h1 style="color: #FFFFFF; margin: 0; font-size: 28px; font-weight: 500;">Bem-vindo ao Talkalot!</h1>
  </div>
  <div style="background-color: #1C1C1C; padding: 35px; border-radius: 0 0 12px 12px;">
    <p style="font-size: 18px; color: #4CA1AF;"><strong>Olá %s,</strong></p>
    <p style="color: #CFCFCF;">Estamos felizes em ter você junto com o Talkalot! O Talkalot conecta você com amigos, familiares e colegas em tempo real, não importa onde eles estejam.</p>
    <div style="background-color: #121212; padding: 25px; border-radius: 10px; margin: 25px 0; border-left: 4px solid #2C5364;">
      <p style="font-size: 16px; margin: 0 0 15px 0; color: #EAEAEA;"><strong>Comece em apenas alguns passos:</strong></p>
      <ul style="padding-left: 20px; margin: 0; color: #B0B0B0;">
        <li style="margin-bottom: 10px;">Configure sua foto de perfil</li>
        <li style="margin-bottom: 10px;">Encontre e adicione seus contatos</li>
        <li style="margin-bottom: 10px;">Inicie uma conversa</li>
        <li style="margin-bottom: 0;">Compartilhe fotos, vídeos e muito mais</li>
      </ul>
    </div>
    <div style="text-align: center; margin: 30px 0;">
      <a href="%s" style="background: linear-gradient(135deg, #203A43, #2C5364); color: white; text-decoration: none; padding: 12px 30px; border-radius: 50px; font-weight: 500; display: inline-block;">Abrir Talkalot</a>
    </div>
    <p style="margin-bottom: 5px; color: #B0B0B0;">Se precisar de ajuda ou tiver dúvidas, estamos sempre aqui para ajudar.</p>
    <p style="margin-top: 0; color: #B0B0B0;">Boas mensagens!</p>
    <p style="margin-top: 25px; margin-bottom: 0; color: #888;">Atenciosamente,<br>Equipe Talkalot</p>
  </div>
  <div style="text-align: center; padding: 20px; color: #666; font-size: 12px;">
    <p>© 2025 Talkalot. Todos os Direitos Reservados.</p>
  </div>
</body>
</html>`, name, clientURL)
}
